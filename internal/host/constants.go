package host

const (
	modelsPath     = "/models"
	parametersPath = "/parameters"
	searchBoxPath  = "/search-box"

	headerAccept      = "Accept"
	headerContentType = "Content-Type"

	mimeApplicationJSON = "application/json"

	logFieldStatus        = "status"
	logFieldParameterName = "parameter_name"
	logFieldModelCount    = "model_count"

	logEventHostRegistryRequestFailed  = "host registry request failed"
	logEventHostParameterRequestFailed = "host parameter request failed"
	logEventHostSearchBoxRequestFailed = "host search box request failed"
	logEventHostCatalogFetched         = "host catalog fetched"

	errorHostUnavailableFormat  = "%w: %v"
	errorHostFailedStatusFormat = "%w: registry returned status %d"
	errorParameterFailedFormat  = "set parameter %q: status %d"
	errorSearchBoxFailedFormat  = "set search box text: status %d"
	errorDecodeCatalogFormat    = "decode host catalog: %w"
)
