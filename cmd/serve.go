package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/velikanov/segselect/internal/apperrors"
	"github.com/velikanov/segselect/internal/server"
	"github.com/velikanov/segselect/internal/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve model resolution and selection over HTTP",
	Long:  "Runs a localhost facade so tutorial and automation scripts can resolve and select models without linking the host.",
	Example: `segselect serve --service_secret=mysecret --host_endpoint=http://localhost:2016
SERVICE_SECRET=mysecret SEG_CATALOG_FILE=models.yaml segselect serve`,
	RunE: func(command *cobra.Command, arguments []string) error {
		if !command.Flags().Changed(flagServiceSecret) {
			config.ServiceSecret = strings.TrimSpace(viper.GetString(keyServiceSecret))
		}
		if !command.Flags().Changed(flagPort) {
			config.Port = viper.GetInt(keyPort)
		}
		if config.Port == 0 {
			config.Port = server.DefaultPort
		}

		structuredLogger, loggerError := buildLogger()
		if loggerError != nil {
			return loggerError
		}
		defer func() { _ = structuredLogger.Sync() }()

		if utils.IsBlank(config.ServiceSecret) {
			structuredLogger.Error("SERVICE_SECRET is empty; refusing to start")
			return apperrors.ErrMissingServiceSecret
		}

		structuredLogger.Infow("starting selection facade",
			"port", config.Port,
			"log_level", strings.ToLower(config.LogLevel),
			"secret_fingerprint", utils.Fingerprint(config.ServiceSecret),
		)
		return server.Serve(server.Configuration{
			ServiceSecret: config.ServiceSecret,
			HostEndpoint:  config.HostEndpoint,
			CatalogPath:   config.CatalogPath,
			Port:          config.Port,
			LogLevel:      config.LogLevel,
		}, structuredLogger)
	},
}

func init() {
	serveCmd.Flags().StringVar(
		&config.ServiceSecret,
		flagServiceSecret,
		"",
		"shared secret for facade requests (env: "+envServiceSecret+")",
	)
	serveCmd.Flags().IntVar(
		&config.Port,
		flagPort,
		0,
		"TCP port to listen on (env: "+envPort+")",
	)
	rootCmd.AddCommand(serveCmd)
}
