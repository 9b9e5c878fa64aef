package models

const (
	logFieldModelID      = "model_id"
	logFieldRequestedID  = "requested_id"
	logFieldBaseName     = "base_name"
	logFieldModelTitle   = "model_title"
	logFieldModelVersion = "model_version"

	logEventModelFound        = "model found"
	logEventExactModelMissing = "exact model missing; searching for fallback"
	logEventFallbackModelUsed = "using fallback model"

	// versionPrefixSeparator joins a base name to its version suffix.
	versionPrefixSeparator = "-v"
)
