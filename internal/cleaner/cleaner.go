// =============================================================================
// konvertorMzdy - Table Normalization Pipeline
// =============================================================================
//
// Turns a raw payroll export table into the normalized table consumed by the
// document assembler (or written back out as a cleaned CSV):
//
//   1. Locate the header row, discard the preamble above it
//   2. Project to the canonical columns
//   3. Strip spaces from numeric-ish cells
//   4. Drop blank rows
//   5. Truncate the "Vypracoval:" trailer
//   6. Fold subtotal rows, forward-fill group names
//   7. Exclude the cash payout rows
//
// Every stage produces a new table; nothing is mutated after a later stage
// has read it.
//
// =============================================================================

package cleaner

// Table is the normalized result: the surviving header labels in source order
// plus data rows of identical length. No row is blank, none is a subtotal
// marker, numeric-ish cells contain no whitespace, and rows keep their
// original relative order.
type Table struct {
	Header []string
	Rows   [][]string
}

// Stats reports what the pipeline did. The counts are informational only and
// never fail a run.
type Stats struct {
	// PreambleRows is the number of rows discarded before the header.
	PreambleRows int

	// TrailerFound indicates the "Vypracoval:" trailer was present and cut.
	TrailerFound bool

	// FilledNames is the number of rows whose blank name cell was filled
	// from a group subtotal marker.
	FilledNames int

	// RemovedSummaries is the number of subtotal marker rows removed.
	RemovedSummaries int

	// ExcludedNames is the number of rows removed by the named-row excluder.
	ExcludedNames int

	// RowsOut is the number of data rows in the normalized table.
	RowsOut int
}

// Clean runs the full normalization pipeline over a raw table. A table where
// every data row is filtered away is not an error: the result is a valid
// normalized table with zero data rows.
func Clean(raw [][]string) (*Table, *Stats, error) {
	stats := &Stats{}

	headerIdx, err := FindHeaderIndex(raw)
	if err != nil {
		return nil, nil, err
	}
	stats.PreambleRows = headerIdx

	rows := raw[headerIdx:]
	rows = ProjectColumns(rows)
	rows = StripNumericSpaces(rows)
	rows = DropBlankRows(rows)
	rows, stats.TrailerFound = TruncateTrailer(rows)

	if len(rows) == 0 {
		// Everything up to and including the header was filtered away;
		// there is nothing left to fold.
		return &Table{}, stats, nil
	}

	rows, stats.FilledNames, stats.RemovedSummaries = FoldSummaries(rows)
	rows, stats.ExcludedNames = ExcludeNamedRows(rows, ExcludedName)

	if len(rows) == 0 {
		return &Table{}, stats, nil
	}

	table := &Table{
		Header: rows[0],
		Rows:   rows[1:],
	}
	stats.RowsOut = len(table.Rows)
	return table, stats, nil
}

// AsRows returns the table as raw rows with the header at index 0, the shape
// the CSV writer expects.
func (t *Table) AsRows() [][]string {
	if len(t.Header) == 0 && len(t.Rows) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(t.Rows)+1)
	rows = append(rows, t.Header)
	rows = append(rows, t.Rows...)
	return rows
}
