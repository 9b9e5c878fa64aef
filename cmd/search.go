package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/velikanov/segselect/internal/models"
)

var searchIncludeDeprecated bool

var searchCmd = &cobra.Command{
	Use:   "search <base-name>",
	Short: "List catalog identifiers sharing a base name",
	Long:  "Prints every catalog identifier of the form <base-name>-v<version>, newest first per the catalog order.",
	Args:  cobra.ExactArgs(1),
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

		for _, modelID := range models.FindByBaseName(catalog, arguments[0], searchIncludeDeprecated) {
			fmt.Fprintln(command.OutOrStdout(), modelID)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVar(
		&searchIncludeDeprecated,
		flagDeprecated,
		false,
		"include deprecated versions in the results",
	)
	rootCmd.AddCommand(searchCmd)
}
