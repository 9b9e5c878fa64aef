package server

import (
	"github.com/velikanov/segselect/internal/apperrors"
	"github.com/velikanov/segselect/internal/utils"
)

const (
	// DefaultPort is the TCP port used by the facade when no explicit port is provided.
	DefaultPort = 8097
)

// Configuration captures runtime settings for the selection facade.
// Exactly one catalog source is consulted: the host endpoint when set,
// otherwise the catalog file.
type Configuration struct {
	ServiceSecret string
	HostEndpoint  string
	CatalogPath   string
	Port          int
	LogLevel      string
}

// validateConfig confirms the presence of required configuration values.
func validateConfig(config Configuration) error {
	if utils.IsBlank(config.ServiceSecret) {
		return apperrors.ErrMissingServiceSecret
	}
	if utils.IsBlank(config.HostEndpoint) && utils.IsBlank(config.CatalogPath) {
		return apperrors.ErrMissingCatalogSource
	}
	return nil
}
