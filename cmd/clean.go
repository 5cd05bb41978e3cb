// =============================================================================
// konvertorMzdy - Clean Command
// =============================================================================
//
// The 'clean' command runs the normalization stage only and writes the
// normalized table back out as a semicolon-delimited CSV. Useful for
// inspecting what the converter will assemble, and as an input to other
// downstream consumers of the normalized table.
//
// COMMAND USAGE:
//   konvertor clean INPUT [OUTPUT]
//
// Without OUTPUT the cleaned file lands next to the configured output
// directory as cleaned__<input name>.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/LukasBenko/konvertorMzdy/internal/converter"
	"github.com/LukasBenko/konvertorMzdy/internal/document"
)

var cleanDelimiter string

var cleanCmd = &cobra.Command{
	Use:   "clean INPUT [OUTPUT]",
	Short: "Normalize a payroll export and write the cleaned CSV",
	Long: `The clean command runs the table normalization pipeline (header discovery,
column projection, numeric cleanup, blank/summary/trailer removal, name
forward-fill) and writes the result as a semicolon-delimited CSV without
assembling an XML document.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClean(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringVar(&cleanDelimiter, "delimiter", "", "Force the input CSV delimiter instead of sniffing (e.g. ';')")
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("delimiter") {
		cfg.ForceDelimiter = cleanDelimiter
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	output := ""
	if len(args) == 2 {
		output = args[1]
	}

	conv := converter.New(args[0], output, cfg, document.Attributes{}, logger)
	result := conv.RunClean()
	if !result.Success {
		fmt.Fprintf(os.Stderr, "  ✗ %s: %v\n", filepath.Base(args[0]), result.Error)
		return result.Error
	}

	fmt.Printf("  ✓ %s -> %s\n", filepath.Base(args[0]), result.OutputFile)
	fmt.Printf("    encoding: %s\n", result.Stats.Encoding)
	fmt.Printf("    rows before header removed: %d\n", result.Stats.PreambleRows)
	fmt.Printf("    filled names: %d\n", result.Stats.FilledNames)
	fmt.Printf("    removed summary rows: %d\n", result.Stats.RemovedSummaries)
	fmt.Printf("    excluded rows: %d\n", result.Stats.ExcludedRows)
	fmt.Printf("    resulting rows: %d\n", result.Stats.RowsOut)
	return nil
}
