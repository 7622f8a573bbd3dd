// Package root contains the root command for the application
package root

import (
	"fjacquet/expensas-report/internal/config"
	"fjacquet/expensas-report/internal/container"
	"fjacquet/expensas-report/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input     string
	Output    string
	LogLevel  string
	LogFormat string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig is the configuration loaded before every command
	AppConfig *config.Config

	// AppContainer holds the wired dependencies of the running command
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expensas-report",
		Short: "A CLI tool to build per-unit payment reports from a building's expensas workbook.",
		Long: `expensas-report reads the bank deposits, expensas fees and water costs of a
building from an Excel workbook and writes one report section per unit with its
payments, fees, a balance chart and a debt or credit notice.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to expensas-report!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := Initialize(); err != nil {
				Log.Fatalf("Failed to initialize: %v", err)
			}
		},
	}

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input workbook (.xlsx)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text or json)")
}

// Initialize loads the environment and configuration, applies the command
// line overrides and builds the dependency container.
func Initialize() error {
	config.LoadEnv(Log)

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if SharedFlags.LogFormat != "" {
		cfg.Log.Format = SharedFlags.LogFormat
	}

	Log = config.ConfigureLoggingFromConfig(cfg)
	AppConfig = cfg

	c, err := container.NewContainerWithLogger(cfg, logging.NewLogrusAdapterFromLogger(Log))
	if err != nil {
		return err
	}
	AppContainer = c
	return nil
}

// GetConfig returns the loaded configuration, or nil before initialization.
func GetConfig() *config.Config {
	return AppConfig
}

// GetContainer returns the dependency container, or nil before initialization.
func GetContainer() *container.Container {
	return AppContainer
}

// GetLogrusAdapter wraps the shared logger in the logging interface.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// InputPath returns the --input flag, falling back to input.path.
func InputPath() string {
	if SharedFlags.Input != "" {
		return SharedFlags.Input
	}
	if AppConfig != nil {
		return AppConfig.Input.Path
	}
	return ""
}
