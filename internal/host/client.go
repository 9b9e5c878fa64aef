// Package host talks to the imaging application's built-in web server: the
// model registry it publishes, the active parameter set, and the module
// search box. Every call takes a fresh snapshot; nothing is cached.
package host

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/velikanov/segselect/internal/apperrors"
	"github.com/velikanov/segselect/internal/constants"
	"github.com/velikanov/segselect/internal/models"
	"github.com/velikanov/segselect/internal/utils"
	"go.uber.org/zap"
)

// defaultRequestTimeout bounds individual host requests; the host runs on
// localhost, so slow answers mean a wedged application rather than a slow
// network.
const defaultRequestTimeout = 10 * time.Second

// Client accesses the host application's web server.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	structuredLogger *zap.SugaredLogger
}

// NewClient creates a Client for the host endpoint. The base URL is required.
func NewClient(baseURL string, structuredLogger *zap.SugaredLogger) (*Client, error) {
	if utils.IsBlank(baseURL) {
		return nil, apperrors.ErrMissingHostEndpoint
	}
	return &Client{
		baseURL:          strings.TrimRight(baseURL, "/"),
		httpClient:       &http.Client{Timeout: defaultRequestTimeout},
		structuredLogger: structuredLogger,
	}, nil
}

// SetHTTPClient replaces the underlying HTTP client; tests use this to point
// the client at stub transports.
func (client *Client) SetHTTPClient(httpClient *http.Client) {
	client.httpClient = httpClient
}

// Models retrieves the current model catalog snapshot from the host registry.
// Transport failures and failed statuses surface as ErrHostUnavailable so
// callers can distinguish a missing host from a missing model.
func (client *Client) Models() (models.Collection, error) {
	httpRequest, requestBuildError := utils.BuildHTTPRequestWithHeaders(
		http.MethodGet,
		client.baseURL+modelsPath,
		nil,
		map[string]string{headerAccept: mimeApplicationJSON},
	)
	if requestBuildError != nil {
		return nil, fmt.Errorf(errorHostUnavailableFormat, apperrors.ErrHostUnavailable, requestBuildError)
	}

	statusCode, responseBytes, latencyMillis, requestError := utils.PerformHTTPRequest(
		client.httpClient.Do,
		httpRequest,
		client.structuredLogger,
		logEventHostRegistryRequestFailed,
	)
	if requestError != nil {
		return nil, fmt.Errorf(errorHostUnavailableFormat, apperrors.ErrHostUnavailable, requestError)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf(errorHostFailedStatusFormat, apperrors.ErrHostUnavailable, statusCode)
	}

	var catalog models.Collection
	if decodeError := json.Unmarshal(responseBytes, &catalog); decodeError != nil {
		return nil, fmt.Errorf(errorDecodeCatalogFormat, decodeError)
	}

	if client.structuredLogger != nil {
		client.structuredLogger.Debugw(
			logEventHostCatalogFetched,
			logFieldModelCount, len(catalog),
			constants.LogFieldLatencyMilliseconds, latencyMillis,
		)
	}
	return catalog, nil
}

// parameterWrite is the JSON body accepted by the host parameter endpoint.
type parameterWrite struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SetParameter records a value in the host's active parameter set.
func (client *Client) SetParameter(parameterName string, parameterValue string) error {
	statusCode, requestError := client.putJSON(parametersPath, parameterWrite{Name: parameterName, Value: parameterValue}, logEventHostParameterRequestFailed)
	if requestError != nil {
		return fmt.Errorf(errorHostUnavailableFormat, apperrors.ErrHostUnavailable, requestError)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusNoContent {
		if client.structuredLogger != nil {
			client.structuredLogger.Errorw(
				logEventHostParameterRequestFailed,
				logFieldParameterName, parameterName,
				logFieldStatus, statusCode,
			)
		}
		return fmt.Errorf(errorParameterFailedFormat, parameterName, statusCode)
	}
	return nil
}

// searchBoxWrite is the JSON body accepted by the host search box endpoint.
type searchBoxWrite struct {
	Text string `json:"text"`
}

// SetSearchBoxText populates the module search box. The caller decides
// whether a failure matters; the selection wrapper swallows it.
func (client *Client) SetSearchBoxText(searchText string) error {
	statusCode, requestError := client.putJSON(searchBoxPath, searchBoxWrite{Text: searchText}, logEventHostSearchBoxRequestFailed)
	if requestError != nil {
		return requestError
	}
	if statusCode != http.StatusOK && statusCode != http.StatusNoContent {
		return fmt.Errorf(errorSearchBoxFailedFormat, statusCode)
	}
	return nil
}

// putJSON issues a PUT with a JSON body against a host path and returns the status code.
func (client *Client) putJSON(hostPath string, payload any, logEventOnTransportError string) (int, error) {
	payloadBytes, marshalError := json.Marshal(payload)
	if marshalError != nil {
		return 0, marshalError
	}
	httpRequest, requestBuildError := utils.BuildHTTPRequestWithHeaders(
		http.MethodPut,
		client.baseURL+hostPath,
		bytes.NewReader(payloadBytes),
		map[string]string{headerContentType: mimeApplicationJSON},
	)
	if requestBuildError != nil {
		return 0, requestBuildError
	}
	statusCode, _, _, requestError := utils.PerformHTTPRequest(
		client.httpClient.Do,
		httpRequest,
		client.structuredLogger,
		logEventOnTransportError,
	)
	return statusCode, requestError
}
