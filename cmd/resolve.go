package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/velikanov/segselect/internal/models"
	"github.com/velikanov/segselect/internal/selection"
)

const (
	flagApply       = "apply"
	flagNoKeywords  = "no_keywords"
	flagKeywordsOut = "keywords"

	errorApplyNeedsHostFormat = "--%s requires a host endpoint"
)

var (
	applySelection   bool
	suppressKeywords bool
	printKeywords    bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <model-id>",
	Short: "Resolve a model identifier with newest-version fallback",
	Long:  "Returns the requested identifier when the catalog contains it, or the newest listed version of the same base name otherwise.",
	Args:  cobra.ExactArgs(1),
	RunE: func(command *cobra.Command, arguments []string) error {
		structuredLogger, loggerError := buildLogger()
		if loggerError != nil {
			return loggerError
		}
		defer func() { _ = structuredLogger.Sync() }()

		catalogSource, hostClient, sourceError := newCatalogSource(structuredLogger)
		if sourceError != nil {
			return sourceError
		}

		requestedID := arguments[0]

		if applySelection {
			if hostClient == nil {
				return fmt.Errorf(errorApplyNeedsHostFormat, flagApply)
			}
			selector := selection.Selector{
				Catalog:          catalogSource,
				Parameters:       hostClient,
				SearchBox:        hostClient,
				StructuredLogger: structuredLogger,
			}
			selectedID, applyError := selector.Apply(requestedID, !suppressKeywords)
			if applyError != nil {
				return applyError
			}
			fmt.Fprintln(command.OutOrStdout(), selectedID)
			return nil
		}

		catalog, catalogError := catalogSource.Models()
		if catalogError != nil {
			return catalogError
		}
		resolvedID, resolveError := models.Resolve(requestedID, catalog, structuredLogger)
		if resolveError != nil {
			return resolveError
		}
		fmt.Fprintln(command.OutOrStdout(), resolvedID)
		if printKeywords {
			fmt.Fprintln(command.OutOrStdout(), models.SearchKeywords(resolvedID, catalog, models.IdentityTranslator))
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().BoolVar(
		&applySelection,
		flagApply,
		false,
		"record the resolved model as the host's active selection",
	)
	resolveCmd.Flags().BoolVar(
		&suppressKeywords,
		flagNoKeywords,
		false,
		"leave the host search box empty when applying a selection",
	)
	resolveCmd.Flags().BoolVar(
		&printKeywords,
		flagKeywordsOut,
		false,
		"also print the display keywords derived from the model title",
	)
	rootCmd.AddCommand(resolveCmd)
}
