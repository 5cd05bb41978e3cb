// =============================================================================
// konvertorMzdy - Converter Module
// =============================================================================
//
// Orchestrates the conversion of a single payroll export:
//
//   1. Read the raw table (encoding resolution, delimiter sniffing / XLSX)
//   2. Normalize it (header, projection, numeric cleanup, filters, folding)
//   3. Assemble the accounting document (M-then-D ordering)
//   4. Serialize to XML
//   5. Write the output, archive the input
//
// The pipeline is synchronous and total: the output file is written only
// after every stage has succeeded, so a failed run never leaves partial XML
// behind.
//
// =============================================================================

package converter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/LukasBenko/konvertorMzdy/internal/cleaner"
	"github.com/LukasBenko/konvertorMzdy/internal/config"
	"github.com/LukasBenko/konvertorMzdy/internal/document"
	"github.com/LukasBenko/konvertorMzdy/internal/tabular"
	"github.com/LukasBenko/konvertorMzdy/internal/xmlwriter"
	"github.com/LukasBenko/konvertorMzdy/pkg/fileutil"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result is the outcome of processing one file.
type Result struct {
	// FilePath is the processed input file.
	FilePath string

	// OutputFile is the generated XML file; empty when processing failed.
	OutputFile string

	// Success indicates the full pipeline ran and the output was written.
	Success bool

	// Error is the failure cause; nil on success.
	Error error

	// Stats carries the conversion counters.
	Stats Stats
}

// Stats collects the informational counters of a run. They are reported and
// logged but never cause a failure.
type Stats struct {
	// Encoding is the resolved input encoding ("xlsx" for workbooks).
	Encoding string

	// RowsIn is the number of raw rows read from the input.
	RowsIn int

	// RowsOut is the number of data rows in the normalized table.
	RowsOut int

	// PreambleRows, FilledNames, RemovedSummaries and ExcludedRows mirror
	// the cleaner's counters.
	PreambleRows     int
	FilledNames      int
	RemovedSummaries int
	ExcludedRows     int

	// Items is the number of line items in the assembled document (two per
	// normalized row).
	Items int

	// Duration is the wall time of the run.
	Duration time.Duration
}

// =============================================================================
// CONVERTER
// =============================================================================

// Converter processes a single input file.
type Converter struct {
	inputPath  string
	outputPath string
	cfg        *config.Config
	attrs      document.Attributes
	logger     *slog.Logger
}

// New creates a Converter for one input file. outputPath may be empty; the
// output then goes to the configured output directory under the configured
// name format.
func New(inputPath, outputPath string, cfg *config.Config, attrs document.Attributes, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{
		inputPath:  inputPath,
		outputPath: outputPath,
		cfg:        cfg,
		attrs:      attrs,
		logger:     logger,
	}
}

// Run executes the full pipeline and returns the outcome.
func (c *Converter) Run() Result {
	start := time.Now()
	result := Result{FilePath: c.inputPath}

	table, stats, err := c.normalize(&result.Stats)
	if err != nil {
		result.Error = err
		return result
	}

	doc, err := document.Assemble(table, c.attrs)
	if err != nil {
		result.Error = fmt.Errorf("failed to assemble document: %w", err)
		return result
	}
	result.Stats.Items = len(doc.Items)
	c.logger.Debug("document assembled",
		slog.Int("rows", stats.RowsOut),
		slog.Int("items", len(doc.Items)))

	options := xmlwriter.DefaultOptions()
	options.KeepEmpty = c.cfg.KeepEmptyAttributes
	xml := xmlwriter.MarshalWithOptions(doc, options)

	outputPath, err := c.writeOutput(xml)
	if err != nil {
		result.Error = err
		return result
	}
	result.OutputFile = outputPath
	c.logger.Info("wrote output",
		slog.String("file", outputPath),
		slog.Int("bytes", len(xml)))

	if c.cfg.ArchiveDir != "" {
		if archived, err := fileutil.ArchiveFile(c.inputPath, c.cfg.ArchiveDir); err != nil {
			// Archival is best effort; the conversion itself succeeded.
			c.logger.Warn("failed to archive input", slog.Any("error", err))
		} else {
			c.logger.Debug("archived input", slog.String("file", archived))
		}
	}

	result.Success = true
	result.Stats.Duration = time.Since(start)
	return result
}

// RunClean executes the normalization stage only and writes the normalized
// table as a semicolon-delimited CSV to outputPath.
func (c *Converter) RunClean() Result {
	start := time.Now()
	result := Result{FilePath: c.inputPath}

	table, _, err := c.normalize(&result.Stats)
	if err != nil {
		result.Error = err
		return result
	}

	outputPath := c.outputPath
	if outputPath == "" {
		base := filepath.Base(c.inputPath)
		outputPath = filepath.Join(c.cfg.OutputDir, "cleaned__"+base)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		result.Error = fmt.Errorf("failed to create output file: %w", err)
		return result
	}
	defer f.Close()

	if err := tabular.WriteCSV(f, table.AsRows(), ';'); err != nil {
		result.Error = err
		return result
	}

	result.OutputFile = outputPath
	result.Success = true
	result.Stats.Duration = time.Since(start)
	c.logger.Info("wrote cleaned table",
		slog.String("file", outputPath),
		slog.Int("rows", result.Stats.RowsOut))
	return result
}

// normalize reads the raw table and runs the cleaning pipeline, filling the
// shared counters.
func (c *Converter) normalize(stats *Stats) (*cleaner.Table, *cleaner.Stats, error) {
	rows, source, err := tabular.ReadFile(c.inputPath, c.cfg.Delimiter())
	if err != nil {
		return nil, nil, err
	}
	stats.Encoding = source.Encoding
	stats.RowsIn = len(rows)
	c.logger.Debug("read input",
		slog.String("file", c.inputPath),
		slog.String("encoding", source.Encoding),
		slog.Int("rows", len(rows)))

	table, cleanStats, err := cleaner.Clean(rows)
	if err != nil {
		return nil, nil, err
	}

	stats.RowsOut = cleanStats.RowsOut
	stats.PreambleRows = cleanStats.PreambleRows
	stats.FilledNames = cleanStats.FilledNames
	stats.RemovedSummaries = cleanStats.RemovedSummaries
	stats.ExcludedRows = cleanStats.ExcludedNames

	c.logger.Debug("normalized table",
		slog.Int("preamble_rows", cleanStats.PreambleRows),
		slog.Int("filled_names", cleanStats.FilledNames),
		slog.Int("removed_summaries", cleanStats.RemovedSummaries),
		slog.Int("excluded_rows", cleanStats.ExcludedNames),
		slog.Int("rows_out", cleanStats.RowsOut))
	if cleanStats.ExcludedNames > 0 {
		c.logger.Info("excluded cash payout rows",
			slog.Int("count", cleanStats.ExcludedNames))
	}

	return table, cleanStats, nil
}

// writeOutput writes the XML document and returns its path.
func (c *Converter) writeOutput(xml []byte) (string, error) {
	outputPath := c.outputPath
	if outputPath == "" {
		name := fileutil.OutputFileName(c.cfg.OutputNameFormat, c.inputPath)
		outputPath = filepath.Join(c.cfg.OutputDir, name)
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, xml, 0o644); err != nil {
		return "", fmt.Errorf("failed to write output: %w", err)
	}
	return outputPath, nil
}
