// =============================================================================
// konvertorMzdy - Column Projector
// =============================================================================
//
// Reduces a table whose first row is the located header to the canonical
// columns only. Matching is tolerant (see columns.go); the output keeps the
// left-to-right order of the matched source columns, not canonical order.
//
// =============================================================================

package cleaner

// ProjectColumns keeps only the source columns whose header cell matches a
// canonical column. Each header cell is examined once and claimed by at most
// one canonical column (the first whose patterns match it).
//
// When no header cell matches at all, the table is returned unmodified. This
// passthrough is intentional, inherited behavior: a table that looks nothing
// like the expected schema flows through untouched rather than collapsing to
// zero columns.
//
// Rows shorter than the right-most kept index are padded with empty cells.
func ProjectColumns(rows [][]string) [][]string {
	if len(rows) == 0 {
		return rows
	}

	header := rows[0]
	var keep []int
	for i, cell := range header {
		if _, ok := MatchColumn(cell); ok {
			keep = append(keep, i)
		}
	}

	if len(keep) == 0 {
		return rows
	}

	projected := make([][]string, len(rows))
	for r, row := range rows {
		out := make([]string, len(keep))
		for j, idx := range keep {
			if idx < len(row) {
				out[j] = row[idx]
			}
		}
		projected[r] = out
	}
	return projected
}
