// Package cmd implements the command-line interface for segselect.
package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/velikanov/segselect/internal/apperrors"
	"github.com/velikanov/segselect/internal/catalogfile"
	"github.com/velikanov/segselect/internal/host"
	"github.com/velikanov/segselect/internal/models"
	"github.com/velikanov/segselect/internal/selection"
	"github.com/velikanov/segselect/internal/utils"
	"go.uber.org/zap"
)

const (
	envPrefix = "seg"

	keyHostEndpoint  = "host_endpoint"
	keyCatalogFile   = "catalog_file"
	keyLogLevel      = "log_level"
	keyServiceSecret = "service_secret"
	keyPort          = "port"

	flagHostEndpoint  = keyHostEndpoint
	flagCatalogFile   = keyCatalogFile
	flagLogLevel      = keyLogLevel
	flagServiceSecret = keyServiceSecret
	flagPort          = keyPort

	envHostEndpoint  = "SEG_HOST_ENDPOINT"
	envCatalogFile   = "SEG_CATALOG_FILE"
	envLogLevel      = "LOG_LEVEL"
	envServiceSecret = "SERVICE_SECRET"
	envPort          = "HTTP_PORT"

	logLevelDebug   = "debug"
	defaultLogLevel = "info"
)

// configuration aggregates runtime settings shared by the subcommands.
type configuration struct {
	HostEndpoint  string
	CatalogPath   string
	LogLevel      string
	ServiceSecret string
	Port          int
}

var config configuration

// Execute runs the command-line interface.
func Execute() {
	rootCmd.SilenceUsage = false
	rootCmd.SilenceErrors = false
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "segselect",
	Short: "Segmentation model selection helper",
	Long:  "Resolves AI segmentation model identifiers against the imaging host's catalog, with newest-version fallback.",
	Example: `segselect resolve prostate-v1.0.0 --host_endpoint=http://localhost:2016
SEG_CATALOG_FILE=models.yaml segselect list`,
	PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
		persistentFlags := command.Root().PersistentFlags()
		if !persistentFlags.Changed(flagHostEndpoint) {
			config.HostEndpoint = strings.TrimSpace(viper.GetString(keyHostEndpoint))
		}
		if !persistentFlags.Changed(flagCatalogFile) {
			config.CatalogPath = strings.TrimSpace(viper.GetString(keyCatalogFile))
		}
		if !persistentFlags.Changed(flagLogLevel) {
			config.LogLevel = viper.GetString(keyLogLevel)
		}
		if config.LogLevel == "" {
			config.LogLevel = defaultLogLevel
		}
		return nil
	},
}

// buildLogger constructs the zap logger matching the configured log level.
func buildLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var loggerError error
	switch strings.ToLower(config.LogLevel) {
	case logLevelDebug:
		logger, loggerError = zap.NewDevelopment()
	default:
		logger, loggerError = zap.NewProduction()
	}
	if loggerError != nil {
		return nil, loggerError
	}
	return logger.Sugar(), nil
}

// fileCatalogSource loads a catalog snapshot from disk on every read.
type fileCatalogSource struct {
	catalogPath string
}

// Models loads the catalog file.
func (source fileCatalogSource) Models() (models.Collection, error) {
	return catalogfile.Load(source.catalogPath)
}

// newCatalogSource selects between the host registry and a catalog file.
// The host client is nil when running from a file.
func newCatalogSource(structuredLogger *zap.SugaredLogger) (selection.CatalogSource, *host.Client, error) {
	if !utils.IsBlank(config.HostEndpoint) {
		hostClient, clientError := host.NewClient(config.HostEndpoint, structuredLogger)
		if clientError != nil {
			return nil, nil, clientError
		}
		return hostClient, hostClient, nil
	}
	if !utils.IsBlank(config.CatalogPath) {
		return fileCatalogSource{catalogPath: config.CatalogPath}, nil, nil
	}
	return nil, nil, apperrors.ErrMissingCatalogSource
}

// bindOrDie wraps viper bindings and returns a combined error if any bind fails.
func bindOrDie() error {
	var bindFailures []string
	if err := viper.BindEnv(keyHostEndpoint, envHostEndpoint); err != nil {
		bindFailures = append(bindFailures, keyHostEndpoint+":"+err.Error())
	}
	if err := viper.BindEnv(keyCatalogFile, envCatalogFile); err != nil {
		bindFailures = append(bindFailures, keyCatalogFile+":"+err.Error())
	}
	if err := viper.BindEnv(keyLogLevel, envLogLevel); err != nil {
		bindFailures = append(bindFailures, keyLogLevel+":"+err.Error())
	}
	if err := viper.BindEnv(keyServiceSecret, envServiceSecret); err != nil {
		bindFailures = append(bindFailures, keyServiceSecret+":"+err.Error())
	}
	if err := viper.BindEnv(keyPort, envPort); err != nil {
		bindFailures = append(bindFailures, keyPort+":"+err.Error())
	}
	if len(bindFailures) > 0 {
		return errors.New(strings.Join(bindFailures, "; "))
	}
	return nil
}

func init() {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := bindOrDie(); err != nil {
		panic("viper env binding failed: " + err.Error())
	}

	rootCmd.PersistentFlags().StringVar(
		&config.HostEndpoint,
		flagHostEndpoint,
		"",
		"base URL of the imaging host web server (env: "+envHostEndpoint+")",
	)
	rootCmd.PersistentFlags().StringVar(
		&config.CatalogPath,
		flagCatalogFile,
		"",
		"path to a model catalog YAML/JSON file (env: "+envCatalogFile+")",
	)
	rootCmd.PersistentFlags().StringVar(
		&config.LogLevel,
		flagLogLevel,
		"",
		"logging level: debug or info (env: "+envLogLevel+")",
	)

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic("failed to bind flags: " + err.Error())
	}
}
