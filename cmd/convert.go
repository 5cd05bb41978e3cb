// =============================================================================
// konvertorMzdy - Convert Command
// =============================================================================
//
// The 'convert' command runs the full pipeline: normalization, document
// assembly and XML serialization.
//
// COMMAND USAGE:
//   konvertor convert INPUT [OUTPUT] [flags]
//
// INPUT may be one CSV/XLSX file or a directory; a directory is processed
// file by file, sequentially, with the same document attributes. Document
// attributes come from flags, falling back to the configured defaults.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LukasBenko/konvertorMzdy/internal/config"
	"github.com/LukasBenko/konvertorMzdy/internal/converter"
	"github.com/LukasBenko/konvertorMzdy/internal/document"
)

// Document attribute flags.
var (
	flagCisloUD   string
	flagDatumUD   string
	flagMandantID string
	flagDruhUD    string
	flagTypUD     string
	flagTextUD    string
)

// Conversion switches.
var (
	flagDelimiter string
	flagKeepEmpty bool
)

var convertCmd = &cobra.Command{
	Use:   "convert INPUT [OUTPUT]",
	Short: "Convert a payroll export to uctovne_doklady XML",
	Long: `The convert command reads a payroll accounting export (CSV or XLSX),
normalizes it (header discovery, column projection, numeric cleanup, subtotal
folding, trailer truncation) and assembles the uctovne_doklady XML document.

When INPUT is a directory every .csv and .xlsx file in it is converted
sequentially. OUTPUT names the XML file for a single input; without it the
configured output directory and name format are used.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&flagCisloUD, "cislo-ud", "", "Document number (cislo_ud)")
	convertCmd.Flags().StringVar(&flagDatumUD, "datum-ud", "", "Document date (datum_ud)")
	convertCmd.Flags().StringVar(&flagMandantID, "mandant-id", "", "Mandant ID (mandant_id)")
	convertCmd.Flags().StringVar(&flagDruhUD, "druh-ud", "", "Document kind (druh_ud)")
	convertCmd.Flags().StringVar(&flagTypUD, "typ-ud", "", "Document type (typ_ud)")
	convertCmd.Flags().StringVar(&flagTextUD, "text-ud", "", "Document text (text_ud)")

	convertCmd.Flags().StringVar(&flagDelimiter, "delimiter", "", "Force the CSV delimiter instead of sniffing (e.g. ';')")
	convertCmd.Flags().BoolVar(&flagKeepEmpty, "keep-empty", false, "Emit empty XML attributes instead of omitting them")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	applyConvertFlags(cmd, cfg)

	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	attrs := documentAttributes(cfg)

	inputs, explicitOutput, err := resolveInputs(args)
	if err != nil {
		return err
	}

	var failed int
	for _, input := range inputs {
		conv := converter.New(input, explicitOutput, cfg, attrs, logger)
		result := conv.Run()
		if !result.Success {
			failed++
			fmt.Fprintf(os.Stderr, "  ✗ %s: %v\n", filepath.Base(input), result.Error)
			continue
		}
		fmt.Printf("  ✓ %s -> %s\n", filepath.Base(input), result.OutputFile)
		printStats(result.Stats)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(inputs))
	}
	return nil
}

// applyConvertFlags copies set flags over the configured defaults.
func applyConvertFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("delimiter") {
		cfg.ForceDelimiter = flagDelimiter
	}
	if cmd.Flags().Changed("keep-empty") {
		cfg.KeepEmptyAttributes = flagKeepEmpty
	}
	if flagCisloUD != "" {
		cfg.Document.Number = flagCisloUD
	}
	if flagDatumUD != "" {
		cfg.Document.Date = flagDatumUD
	}
	if flagMandantID != "" {
		cfg.Document.MandateID = flagMandantID
	}
	if flagDruhUD != "" {
		cfg.Document.Kind = flagDruhUD
	}
	if flagTypUD != "" {
		cfg.Document.Type = flagTypUD
	}
	if flagTextUD != "" {
		cfg.Document.Text = flagTextUD
	}
}

// documentAttributes converts the resolved defaults into assembler input.
func documentAttributes(cfg *config.Config) document.Attributes {
	return document.Attributes{
		Number:    cfg.Document.Number,
		Date:      cfg.Document.Date,
		MandateID: cfg.Document.MandateID,
		Kind:      cfg.Document.Kind,
		Type:      cfg.Document.Type,
		Text:      cfg.Document.Text,
	}
}

// resolveInputs expands a directory input into its convertible files. An
// explicit OUTPUT argument is only meaningful for a single input file.
func resolveInputs(args []string) (inputs []string, explicitOutput string, err error) {
	info, err := os.Stat(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("cannot read input: %w", err)
	}

	if !info.IsDir() {
		if len(args) == 2 {
			explicitOutput = args[1]
		}
		return []string{args[0]}, explicitOutput, nil
	}

	if len(args) == 2 {
		return nil, "", fmt.Errorf("OUTPUT cannot be combined with a directory input")
	}

	entries, err := os.ReadDir(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("cannot list input directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".csv" || ext == ".xlsx" {
			inputs = append(inputs, filepath.Join(args[0], entry.Name()))
		}
	}
	if len(inputs) == 0 {
		return nil, "", fmt.Errorf("no .csv or .xlsx files in %s", args[0])
	}
	return inputs, "", nil
}

// printStats prints the per-file conversion summary.
func printStats(stats converter.Stats) {
	fmt.Printf("    encoding %s, %d rows in, %d rows out, %d items\n",
		stats.Encoding, stats.RowsIn, stats.RowsOut, stats.Items)
	if stats.FilledNames > 0 || stats.RemovedSummaries > 0 || stats.ExcludedRows > 0 {
		fmt.Printf("    filled names: %d, removed summaries: %d, excluded rows: %d\n",
			stats.FilledNames, stats.RemovedSummaries, stats.ExcludedRows)
	}
}
