// Package server exposes model resolution and selection over HTTP so
// tutorial and automation scripts can drive them without linking the host.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/velikanov/segselect/internal/apperrors"
	"github.com/velikanov/segselect/internal/catalogfile"
	"github.com/velikanov/segselect/internal/host"
	"github.com/velikanov/segselect/internal/models"
	"github.com/velikanov/segselect/internal/selection"
	"github.com/velikanov/segselect/internal/utils"
	"go.uber.org/zap"
)

// fileCatalogSource loads a fresh catalog snapshot from disk per request,
// matching the no-caching contract of the host registry source.
type fileCatalogSource struct {
	catalogPath string
}

// Models loads the catalog file.
func (source fileCatalogSource) Models() (models.Collection, error) {
	return catalogfile.Load(source.catalogPath)
}

// BuildRouter assembles the gin engine serving the selection facade.
// When the configuration names a host endpoint, the facade proxies catalog
// reads and selection writes to the host; otherwise it answers read-only
// requests from the catalog file.
func BuildRouter(config Configuration, structuredLogger *zap.SugaredLogger) (*gin.Engine, error) {
	if validationError := validateConfig(config); validationError != nil {
		return nil, validationError
	}

	var catalogSource selection.CatalogSource
	var hostClient *host.Client
	if !utils.IsBlank(config.HostEndpoint) {
		builtClient, clientError := host.NewClient(config.HostEndpoint, structuredLogger)
		if clientError != nil {
			return nil, clientError
		}
		hostClient = builtClient
		catalogSource = builtClient
	} else {
		catalogSource = fileCatalogSource{catalogPath: config.CatalogPath}
	}

	if strings.ToLower(config.LogLevel) == LogLevelDebug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(requestIDMiddleware())
	if logLevel := strings.ToLower(config.LogLevel); logLevel == LogLevelInfo || logLevel == LogLevelDebug {
		router.Use(requestResponseLogger(structuredLogger))
	}

	router.Use(gin.Recovery(), secretMiddleware(config.ServiceSecret, structuredLogger))
	router.GET("/models", modelsHandler(catalogSource, structuredLogger))
	router.GET("/resolve", resolveHandler(catalogSource, structuredLogger))
	router.GET("/search", searchHandler(catalogSource, structuredLogger))
	router.POST("/select", selectHandler(catalogSource, hostClient, structuredLogger))
	return router, nil
}

// Serve builds the router and listens on the configured port.
func Serve(config Configuration, structuredLogger *zap.SugaredLogger) error {
	router, buildError := BuildRouter(config, structuredLogger)
	if buildError != nil {
		return buildError
	}
	return router.Run(fmt.Sprintf(":%d", config.Port))
}

// parseBooleanQuery interprets an optional boolean query parameter, logging and ignoring malformed values.
func parseBooleanQuery(ginContext *gin.Context, parameterName string, defaultValue bool, logEventOnParseFailure string, structuredLogger *zap.SugaredLogger) bool {
	rawValue := strings.TrimSpace(ginContext.Query(parameterName))
	if rawValue == "" {
		return defaultValue
	}
	parsedValue, parseError := strconv.ParseBool(rawValue)
	if parseError != nil {
		structuredLogger.Warnw(
			logEventOnParseFailure,
			logFieldValue, rawValue,
			logFieldError, parseError,
		)
		return defaultValue
	}
	return parsedValue
}

// writeResolutionFailure maps resolution errors onto HTTP statuses.
func writeResolutionFailure(ginContext *gin.Context, resolutionError error) {
	var notFoundError *models.NotFoundError
	switch {
	case errors.As(resolutionError, &notFoundError):
		ginContext.String(http.StatusNotFound, resolutionError.Error())
	case errors.Is(resolutionError, apperrors.ErrHostUnavailable):
		ginContext.String(http.StatusBadGateway, resolutionError.Error())
	default:
		ginContext.String(http.StatusInternalServerError, resolutionError.Error())
	}
}

// modelsHandler lists catalog summaries.
func modelsHandler(catalogSource selection.CatalogSource, structuredLogger *zap.SugaredLogger) gin.HandlerFunc {
	return func(ginContext *gin.Context) {
		includeDeprecated := parseBooleanQuery(ginContext, queryParameterDeprecated, false, logEventParseDeprecatedFlagFailed, structuredLogger)
		catalog, catalogError := catalogSource.Models()
		if catalogError != nil {
			structuredLogger.Errorw(logEventCatalogSnapshotFetchFailed, logFieldError, catalogError)
			writeResolutionFailure(ginContext, catalogError)
			return
		}
		ginContext.JSON(http.StatusOK, models.List(catalog, includeDeprecated))
	}
}

// resolveHandler resolves a requested model identifier with version fallback.
func resolveHandler(catalogSource selection.CatalogSource, structuredLogger *zap.SugaredLogger) gin.HandlerFunc {
	return func(ginContext *gin.Context) {
		requestedID := strings.TrimSpace(ginContext.Query(queryParameterModel))
		if requestedID == "" {
			ginContext.String(http.StatusBadRequest, errorMissingModel)
			return
		}
		catalog, catalogError := catalogSource.Models()
		if catalogError != nil {
			structuredLogger.Errorw(logEventCatalogSnapshotFetchFailed, logFieldError, catalogError)
			writeResolutionFailure(ginContext, catalogError)
			return
		}
		resolvedID, resolveError := models.Resolve(requestedID, catalog, structuredLogger)
		if resolveError != nil {
			structuredLogger.Warnw(logEventModelResolutionFailed, logFieldError, resolveError)
			writeResolutionFailure(ginContext, resolveError)
			return
		}
		ginContext.JSON(http.StatusOK, gin.H{
			jsonFieldRequested: requestedID,
			jsonFieldResolved:  resolvedID,
		})
	}
}

// searchHandler lists identifiers sharing a base name.
func searchHandler(catalogSource selection.CatalogSource, structuredLogger *zap.SugaredLogger) gin.HandlerFunc {
	return func(ginContext *gin.Context) {
		baseName := strings.TrimSpace(ginContext.Query(queryParameterBase))
		if baseName == "" {
			ginContext.String(http.StatusBadRequest, errorMissingBase)
			return
		}
		includeDeprecated := parseBooleanQuery(ginContext, queryParameterDeprecated, false, logEventParseDeprecatedFlagFailed, structuredLogger)
		catalog, catalogError := catalogSource.Models()
		if catalogError != nil {
			structuredLogger.Errorw(logEventCatalogSnapshotFetchFailed, logFieldError, catalogError)
			writeResolutionFailure(ginContext, catalogError)
			return
		}
		ginContext.JSON(http.StatusOK, models.FindByBaseName(catalog, baseName, includeDeprecated))
	}
}

// selectHandler resolves a model and records it as the host's active selection.
func selectHandler(catalogSource selection.CatalogSource, hostClient *host.Client, structuredLogger *zap.SugaredLogger) gin.HandlerFunc {
	return func(ginContext *gin.Context) {
		requestedID := strings.TrimSpace(ginContext.Query(queryParameterModel))
		if requestedID == "" {
			ginContext.String(http.StatusBadRequest, errorMissingModel)
			return
		}
		if hostClient == nil {
			ginContext.String(http.StatusNotImplemented, errorSelectionUnsupported)
			return
		}
		useKeywords := parseBooleanQuery(ginContext, queryParameterKeywords, true, logEventParseKeywordsFlagFailed, structuredLogger)

		selector := selection.Selector{
			Catalog:          catalogSource,
			Parameters:       hostClient,
			SearchBox:        hostClient,
			StructuredLogger: structuredLogger,
		}
		selectedID, applyError := selector.Apply(requestedID, useKeywords)
		if applyError != nil {
			structuredLogger.Warnw(logEventModelSelectionFailed, logFieldError, applyError)
			writeResolutionFailure(ginContext, applyError)
			return
		}
		ginContext.JSON(http.StatusOK, gin.H{
			jsonFieldRequested: requestedID,
			jsonFieldSelected:  selectedID,
		})
	}
}
