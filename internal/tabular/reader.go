// =============================================================================
// konvertorMzdy - Raw Table Reader
// =============================================================================
//
// Reads the payroll export into a raw, ragged table of text cells. Two input
// shapes are supported:
//   - delimited text (CSV): encoding resolved first, delimiter forced by the
//     caller or sniffed from a small sample
//   - XLSX: the first sheet of the workbook, read via excelize
//
// The reader does no cleaning; that is the cleaner package's job.
//
// =============================================================================

package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/LukasBenko/konvertorMzdy/internal/charsetx"
)

// sniffSampleSize is how much of the file the delimiter sniffer looks at.
const sniffSampleSize = 4096

// delimiterCandidates are the delimiters the sniffer considers, most common
// in these exports first.
var delimiterCandidates = []rune{';', ',', '\t', '|'}

// DefaultDelimiter is used when sniffing is inconclusive. The reporting
// system emits semicolon-separated files.
const DefaultDelimiter = ';'

// Source describes where a raw table came from.
type Source struct {
	// Path is the input file path.
	Path string

	// Encoding is the resolved text encoding ("xlsx" for workbooks).
	Encoding string

	// Delimiter is the delimiter the CSV was read with (0 for workbooks).
	Delimiter rune
}

// ReadFile loads a raw table from path. A forceDelimiter of 0 means sniff.
func ReadFile(path string, forceDelimiter rune) ([][]string, *Source, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err := readXLSX(path)
		if err != nil {
			return nil, nil, err
		}
		return rows, &Source{Path: path, Encoding: "xlsx"}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	text, encoding, err := charsetx.Decode(raw)
	if err != nil {
		return nil, nil, err
	}

	delimiter := forceDelimiter
	if delimiter == 0 {
		delimiter = SniffDelimiter(sample(text, sniffSampleSize))
	}

	rows, err := ReadCSV(text, delimiter)
	if err != nil {
		return nil, nil, err
	}
	return rows, &Source{Path: path, Encoding: encoding, Delimiter: delimiter}, nil
}

// ReadCSV parses delimited text into a ragged table. Rows may have varying
// lengths and quoting is forgiving; exports hand-edited in spreadsheet tools
// rarely quote consistently.
func ReadCSV(text string, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// SniffDelimiter picks the delimiter whose per-line count is consistent and
// positive across the sample lines; ties go to the higher count. Falls back
// to DefaultDelimiter when no candidate fits.
func SniffDelimiter(sampleText string) rune {
	var lines []string
	for _, line := range strings.Split(sampleText, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
		if len(lines) == 10 {
			break
		}
	}
	if len(lines) == 0 {
		return DefaultDelimiter
	}

	best := rune(0)
	bestCount := 0
	for _, cand := range delimiterCandidates {
		count := strings.Count(lines[0], string(cand))
		if count == 0 {
			continue
		}
		consistent := true
		for _, line := range lines[1:] {
			if strings.Count(line, string(cand)) != count {
				consistent = false
				break
			}
		}
		if consistent && count > bestCount {
			best = cand
			bestCount = count
		}
	}

	if best == 0 {
		// No candidate splits every line the same way; fall back to the
		// most frequent one on the first line.
		for _, cand := range delimiterCandidates {
			if count := strings.Count(lines[0], string(cand)); count > bestCount {
				best = cand
				bestCount = count
			}
		}
	}
	if best == 0 {
		return DefaultDelimiter
	}
	return best
}

// readXLSX reads the first sheet of a workbook into a ragged table.
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// WriteCSV writes a table as delimited text, the boundary artifact of the
// normalization stage.
func WriteCSV(w io.Writer, rows [][]string, delimiter rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delimiter
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	writer.Flush()
	return writer.Error()
}

func sample(text string, n int) string {
	if len(text) <= n {
		return text
	}
	return text[:n]
}
