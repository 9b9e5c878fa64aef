package apperrors

import "errors"

var (
	// ErrHostUnavailable indicates that the imaging host application's web
	// server could not be reached or returned a failed status.
	ErrHostUnavailable = errors.New("imaging host unavailable")

	// ErrMissingHostEndpoint indicates that no host endpoint URL was supplied.
	ErrMissingHostEndpoint = errors.New("host endpoint must be set")

	// ErrMissingCatalogSource indicates that neither a host endpoint nor a
	// catalog file was supplied.
	ErrMissingCatalogSource = errors.New("either host endpoint or catalog file must be set")

	// ErrMissingServiceSecret indicates that the facade shared secret is empty.
	ErrMissingServiceSecret = errors.New("SERVICE_SECRET must be set")
)
