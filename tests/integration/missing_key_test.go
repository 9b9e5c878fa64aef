package integration_test

import (
	"net/http"
	"testing"
)

// TestFacade_RejectsMissingClientKey confirms that requests without the shared
// secret are refused before any host traffic happens.
func TestFacade_RejectsMissingClientKey(testingInstance *testing.T) {
	hostServer := newHostServer(testingInstance, hostCatalogBody, http.StatusOK, nil)
	facadeServer := newFacadeServer(testingInstance, hostServer)

	response, requestError := http.Get(facadeServer.URL + "/models")
	if requestError != nil {
		testingInstance.Fatalf("request failed: %v", requestError)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusForbidden {
		testingInstance.Fatalf("status=%d want=%d", response.StatusCode, http.StatusForbidden)
	}
}

// TestFacade_RejectsWrongClientKey confirms that a wrong secret is refused.
func TestFacade_RejectsWrongClientKey(testingInstance *testing.T) {
	hostServer := newHostServer(testingInstance, hostCatalogBody, http.StatusOK, nil)
	facadeServer := newFacadeServer(testingInstance, hostServer)

	response, requestError := http.Get(facadeServer.URL + "/models?key=wrong")
	if requestError != nil {
		testingInstance.Fatalf("request failed: %v", requestError)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusForbidden {
		testingInstance.Fatalf("status=%d want=%d", response.StatusCode, http.StatusForbidden)
	}
}
