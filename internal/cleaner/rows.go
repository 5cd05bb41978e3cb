// =============================================================================
// konvertorMzdy - Row Filters
// =============================================================================
//
// Small row-level filters of the normalization pipeline: blank-row removal,
// trailer truncation and the named-row excluder.
//
// =============================================================================

package cleaner

import "strings"

// TrailerPrefix marks the first row of the free-text trailer the reporting
// system appends after the data ("Vypracoval:" = "prepared by"). The trailer
// row and everything after it is dropped.
const TrailerPrefix = "Vypracoval:"

// ExcludedName is the line item name removed from the table entirely: cash
// payout rows are booked separately and must not reach the document.
const ExcludedName = "výplata v hotovosti"

// IsBlankRow reports whether every cell of the row is empty after cleaning.
func IsBlankRow(row []string) bool {
	for _, cell := range row {
		if CleanCell(cell) != "" {
			return false
		}
	}
	return true
}

// DropBlankRows removes fully blank rows wherever they occur.
func DropBlankRows(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if !IsBlankRow(row) {
			out = append(out, row)
		}
	}
	return out
}

// TruncateTrailer cuts the table at the first row whose first cell starts
// with TrailerPrefix. It returns the truncated table and whether a trailer
// was found; without a trailer the table is returned unchanged.
func TruncateTrailer(rows [][]string) ([][]string, bool) {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if strings.HasPrefix(CleanCell(row[0]), TrailerPrefix) {
			return rows[:i], true
		}
	}
	return rows, false
}

// ExcludeNamedRows drops every data row whose Name cell, cleaned and
// lowercased, equals the given label. The header at index 0 is kept as-is.
// The number of removed rows is returned for reporting; removal is never an
// error.
func ExcludeNamedRows(rows [][]string, label string) ([][]string, int) {
	out := make([][]string, 0, len(rows))
	removed := 0
	for _, row := range rows {
		if len(row) > 0 && strings.ToLower(CleanCell(row[0])) == label {
			removed++
			continue
		}
		out = append(out, row)
	}
	return out, removed
}
