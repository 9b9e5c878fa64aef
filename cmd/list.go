package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/velikanov/segselect/internal/models"
)

const (
	flagDeprecated = "deprecated"

	listLineFormat = "%s\t%s\t%s\n"
)

var listIncludeDeprecated bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the models available in the catalog",
	RunE: func(command *cobra.Command, arguments []string) error {
		structuredLogger, loggerError := buildLogger()
		if loggerError != nil {
			return loggerError
		}
		defer func() { _ = structuredLogger.Sync() }()

		catalogSource, _, sourceError := newCatalogSource(structuredLogger)
		if sourceError != nil {
			return sourceError
		}
		catalog, catalogError := catalogSource.Models()
		if catalogError != nil {
			return catalogError
		}

		for _, summary := range models.List(catalog, listIncludeDeprecated) {
			fmt.Fprintf(command.OutOrStdout(), listLineFormat, summary.ID, summary.Title, summary.Version)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(
		&listIncludeDeprecated,
		flagDeprecated,
		false,
		"include deprecated models in the listing",
	)
	rootCmd.AddCommand(listCmd)
}
