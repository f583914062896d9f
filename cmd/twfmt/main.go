package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pipech/readable-tailwind/internal/config"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "twfmt",
	Short: "twfmt - readable Tailwind class literals",
	Long: `twfmt rewrites Tailwind utility-class literals in HTML and JS/TS/JSX
sources into a normalized single line or a width-bound multi-line
layout, and collapses unnecessary whitespace inside them.

Every literal is checked independently and statelessly; fixes splice
the computed layout back into the source verbatim.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger; the config file may raise the level, the
		// --verbose flag always wins.
		zcfg := zap.NewProductionConfig()
		level := zapcore.InfoLevel
		if cfg, err := config.Load(cfgPath); err == nil {
			if parsed, err := zapcore.ParseLevel(cfg.Logging.Level); err == nil {
				level = parsed
			}
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)

		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// loadConfig resolves and validates the configuration once per
// invocation.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func targetPaths(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return []string{"."}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", config.DefaultPath, "path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(checkCmd, fixCmd, watchCmd, initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
