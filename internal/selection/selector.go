// Package selection applies a resolved model choice to the host application:
// resolve the requested identifier, record it as the active model, and give
// the user visual feedback through the module search box.
package selection

import (
	"github.com/velikanov/segselect/internal/models"
	"go.uber.org/zap"
)

// ParameterNameModel is the parameter-set key holding the active model.
const ParameterNameModel = "Model"

const (
	logFieldSelectedModelID = "selected_model_id"
	logFieldError           = "error"

	logEventSearchBoxWriteFailed = "search box write failed; continuing"
	logEventModelSelected        = "model selected"
)

// CatalogSource supplies a current snapshot of the host model catalog.
type CatalogSource interface {
	Models() (models.Collection, error)
}

// ParameterSink records values in the host's active parameter set.
type ParameterSink interface {
	SetParameter(parameterName string, parameterValue string) error
}

// SearchBoxSink updates the module search box text.
type SearchBoxSink interface {
	SetSearchBoxText(searchText string) error
}

// Selector wires the capabilities needed to select a model on the host.
// Catalog and Parameters are required; SearchBox and Translate are optional.
type Selector struct {
	Catalog          CatalogSource
	Parameters       ParameterSink
	SearchBox        SearchBoxSink
	Translate        models.Translator
	StructuredLogger *zap.SugaredLogger
}

// Apply resolves requestedID against a fresh catalog snapshot, records the
// resolved identifier under ParameterNameModel, and populates the search box
// with display keywords (or clears it when useKeywords is false). Search box
// failures are logged and swallowed; the box is a cosmetic affordance.
// It returns the identifier actually selected, which differs from the
// request when version fallback applied.
func (selector Selector) Apply(requestedID string, useKeywords bool) (string, error) {
	catalog, catalogError := selector.Catalog.Models()
	if catalogError != nil {
		return "", catalogError
	}

	resolvedID, resolveError := models.Resolve(requestedID, catalog, selector.StructuredLogger)
	if resolveError != nil {
		return "", resolveError
	}

	if parameterError := selector.Parameters.SetParameter(ParameterNameModel, resolvedID); parameterError != nil {
		return "", parameterError
	}

	if selector.SearchBox != nil {
		searchBoxText := ""
		if useKeywords {
			searchBoxText = models.SearchKeywords(resolvedID, catalog, selector.Translate)
		}
		if searchBoxError := selector.SearchBox.SetSearchBoxText(searchBoxText); searchBoxError != nil && selector.StructuredLogger != nil {
			selector.StructuredLogger.Warnw(
				logEventSearchBoxWriteFailed,
				logFieldError, searchBoxError,
			)
		}
	}

	if selector.StructuredLogger != nil {
		selector.StructuredLogger.Infow(logEventModelSelected, logFieldSelectedModelID, resolvedID)
	}
	return resolvedID, nil
}
