package server

const (
	// LogLevelDebug indicates that the facade should log debug information.
	LogLevelDebug = "debug"

	// LogLevelInfo indicates that the facade should log informational messages.
	LogLevelInfo = "info"

	headerRequestID = "X-Request-ID"

	queryParameterKey        = "key"
	queryParameterModel      = "model"
	queryParameterBase       = "base"
	queryParameterDeprecated = "deprecated"
	queryParameterKeywords   = "keywords"

	redactedPlaceholder = "***REDACTED***"

	errorMissingModel = "missing model parameter"
	errorMissingBase  = "missing base parameter"
	// ErrorMissingClientKey indicates that the key query parameter is missing or wrong.
	ErrorMissingClientKey     = "missing client key"
	errorSelectionUnsupported = "selection requires a host endpoint; facade is running from a catalog file"

	jsonFieldRequested = "requested"
	jsonFieldResolved  = "resolved"
	jsonFieldSelected  = "selected"

	contextKeyRequestID = "request_id"

	logFieldMethod    = "method"
	logFieldPath      = "path"
	logFieldClientIP  = "client_ip"
	logFieldStatus    = "status"
	logFieldValue     = "value"
	logFieldError     = "error"
	logFieldRequestID = "request_id"
	// logFieldExpectedFingerprint identifies the fingerprint of the expected client key.
	logFieldExpectedFingerprint = "expected_fingerprint"

	logEventRequestReceived            = "request received"
	logEventResponseSent               = "response sent"
	logEventForbiddenRequest           = "forbidden request"
	logEventParseDeprecatedFlagFailed  = "parse deprecated parameter failed"
	logEventParseKeywordsFlagFailed    = "parse keywords parameter failed"
	logEventModelResolutionFailed      = "model resolution failed"
	logEventModelSelectionFailed       = "model selection failed"
	logEventCatalogSnapshotFetchFailed = "catalog snapshot fetch failed"
)
