package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrModelNotFound is matched by errors.Is for every NotFoundError.
var ErrModelNotFound = errors.New("model not found")

// notFoundSampleLimit caps how many available identifiers a NotFoundError carries.
const notFoundSampleLimit = 10

// NotFoundError reports that a requested model has neither an exact match nor
// a usable fallback in the catalog.
type NotFoundError struct {
	// RequestedID is the identifier the caller asked for.
	RequestedID string
	// AvailableIDs samples non-deprecated identifiers in catalog order,
	// capped at notFoundSampleLimit.
	AvailableIDs []string
	// AdditionalCount is how many more non-deprecated identifiers exist
	// beyond the sample.
	AdditionalCount int
}

// newNotFoundError builds a NotFoundError with an ordered sample of the
// non-deprecated identifiers available in the catalog.
func newNotFoundError(requestedID string, catalog Collection) *NotFoundError {
	availableIdentifiers := make([]string, 0, notFoundSampleLimit)
	additionalCount := 0
	for _, descriptor := range catalog {
		if descriptor.Deprecated {
			continue
		}
		if len(availableIdentifiers) < notFoundSampleLimit {
			availableIdentifiers = append(availableIdentifiers, descriptor.ID)
			continue
		}
		additionalCount++
	}
	return &NotFoundError{
		RequestedID:     requestedID,
		AvailableIDs:    availableIdentifiers,
		AdditionalCount: additionalCount,
	}
}

// Error lists the requested identifier and the sampled available identifiers.
func (notFound *NotFoundError) Error() string {
	var messageBuilder strings.Builder
	fmt.Fprintf(&messageBuilder, "model %q not found and no fallback available; available models:", notFound.RequestedID)
	for _, modelID := range notFound.AvailableIDs {
		fmt.Fprintf(&messageBuilder, "\n  - %s", modelID)
	}
	if notFound.AdditionalCount > 0 {
		fmt.Fprintf(&messageBuilder, "\n  ... and %d more", notFound.AdditionalCount)
	}
	return messageBuilder.String()
}

// Unwrap lets callers match NotFoundError against ErrModelNotFound.
func (notFound *NotFoundError) Unwrap() error {
	return ErrModelNotFound
}
