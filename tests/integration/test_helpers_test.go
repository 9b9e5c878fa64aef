package integration_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/velikanov/segselect/internal/server"
	"go.uber.org/zap"
)

const (
	serviceSecretValue      = "sekret"
	modelsPath              = "/models"
	parametersPath          = "/parameters"
	searchBoxPath           = "/search-box"
	headerContentTypeKey    = "Content-Type"
	mimeTypeApplicationJSON = "application/json"
	logLevelDebug           = "debug"
	keyQueryParameter       = "key"
	catalogFileName         = "catalog.yaml"

	hostCatalogBody = `[
		{"id":"prostate-v1.0.2","title":"Prostate Segmentation","version":"1.0.2"},
		{"id":"prostate-v1.0.1","title":"Prostate Segmentation","version":"1.0.1"},
		{"id":"prostate-v1.0.0","title":"Prostate Segmentation","version":"1.0.0","deprecated":true},
		{"id":"lung-v1.0.0","title":"Lung Segmentation","version":"1.0.0"}
	]`

	fileCatalogBody = `models:
  - id: prostate-v1.0.1
    title: Prostate Segmentation
    version: 1.0.1
  - id: lung-v1.0.0
    title: Lung Segmentation
    version: 1.0.0
`
)

// capturedWrites records the selection writes a stub host received.
type capturedWrites struct {
	parameterPayload map[string]string
	searchBoxPayload map[string]string
}

// newHostServer returns a stub imaging host serving the provided catalog body
// and capturing parameter and search box writes.
func newHostServer(testingInstance *testing.T, catalogBody string, catalogStatusCode int, writes *capturedWrites) *httptest.Server {
	testingInstance.Helper()
	handler := http.HandlerFunc(func(responseWriter http.ResponseWriter, httpRequest *http.Request) {
		switch httpRequest.URL.Path {
		case modelsPath:
			responseWriter.Header().Set(headerContentTypeKey, mimeTypeApplicationJSON)
			responseWriter.WriteHeader(catalogStatusCode)
			_, _ = io.WriteString(responseWriter, catalogBody)
		case parametersPath:
			if writes != nil {
				body, _ := io.ReadAll(httpRequest.Body)
				_ = json.Unmarshal(body, &writes.parameterPayload)
			}
			responseWriter.WriteHeader(http.StatusNoContent)
		case searchBoxPath:
			if writes != nil {
				body, _ := io.ReadAll(httpRequest.Body)
				_ = json.Unmarshal(body, &writes.searchBoxPayload)
			}
			responseWriter.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(responseWriter, httpRequest)
		}
	})
	hostServer := httptest.NewServer(handler)
	testingInstance.Cleanup(hostServer.Close)
	return hostServer
}

// newFacadeServer builds the facade pointing at the provided host server.
func newFacadeServer(testingInstance *testing.T, hostServer *httptest.Server) *httptest.Server {
	testingInstance.Helper()
	router, buildRouterError := server.BuildRouter(server.Configuration{
		ServiceSecret: serviceSecretValue,
		HostEndpoint:  hostServer.URL,
		LogLevel:      logLevelDebug,
	}, newLogger(testingInstance))
	if buildRouterError != nil {
		testingInstance.Fatalf("BuildRouter error: %v", buildRouterError)
	}
	facadeServer := httptest.NewServer(router)
	testingInstance.Cleanup(facadeServer.Close)
	return facadeServer
}

// newFileFacadeServer builds the facade answering from a catalog file on disk.
func newFileFacadeServer(testingInstance *testing.T, catalogBody string) *httptest.Server {
	testingInstance.Helper()
	catalogPath := filepath.Join(testingInstance.TempDir(), catalogFileName)
	if writeError := os.WriteFile(catalogPath, []byte(catalogBody), 0o600); writeError != nil {
		testingInstance.Fatalf("write catalog file: %v", writeError)
	}
	router, buildRouterError := server.BuildRouter(server.Configuration{
		ServiceSecret: serviceSecretValue,
		CatalogPath:   catalogPath,
		LogLevel:      logLevelDebug,
	}, newLogger(testingInstance))
	if buildRouterError != nil {
		testingInstance.Fatalf("BuildRouter error: %v", buildRouterError)
	}
	facadeServer := httptest.NewServer(router)
	testingInstance.Cleanup(facadeServer.Close)
	return facadeServer
}

// newLogger constructs a development logger for tests.
func newLogger(testingInstance *testing.T) *zap.SugaredLogger {
	testingInstance.Helper()
	logger, _ := zap.NewDevelopment()
	testingInstance.Cleanup(func() { _ = logger.Sync() })
	return logger.Sugar()
}
