// =============================================================================
// konvertorMzdy - Root Command
// =============================================================================
//
// Defines the root Cobra command all subcommands attach to:
//
//   konvertor
//   ├── convert  (full CSV/XLSX → uctovne_doklady XML conversion)
//   ├── clean    (normalization stage only, emits cleaned CSV)
//   └── version
//
// The root command owns the global flags (--config, --verbose) and sets up
// configuration loading and structured logging for the subcommands.
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/LukasBenko/konvertorMzdy/internal/config"
)

// cfgFile is the path to the configuration file, overridable via --config.
var cfgFile string

// verbose raises the log level to debug.
var verbose bool

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "konvertor",
	Short: "Convert payroll accounting CSV exports to uctovne_doklady XML",
	Long: `konvertorMzdy converts semi-structured payroll accounting exports (CSV or
XLSX, with preamble rows, subtotal markers and a free-text trailer) into a
normalized table and assembles it into an uctovne_doklady XML document with
strict debit-before-credit item ordering.

Example Usage:
  konvertor convert mzdy_2025_09.csv out.xml --cislo-ud 250901 --datum-ud 30.09.2025
  konvertor clean mzdy_2025_09.csv cleaned.csv
  konvertor convert export.xlsx --keep-empty --delimiter ';'`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"konvertor.yaml",
		"Path to the configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug output",
	)
}

// loadConfig loads the configuration and wires the global logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := parseLogLevel(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return cfg, logger, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
