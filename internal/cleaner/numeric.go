// =============================================================================
// konvertorMzdy - Numeric Normalizer
// =============================================================================
//
// Account numbers, cost centers and amounts come out of the reporting system
// with thousands groups separated by spaces or non-breaking spaces
// ("1 234 567"). Downstream consumers need contiguous digit runs, so every
// space inside a numeric-ish cell is removed, not just the surrounding ones.
//
// =============================================================================

package cleaner

import "strings"

// StripNumericSpaces removes all spaces (NBSP included) from the cells of the
// numeric-ish columns. Which columns are numeric-ish is decided by the header
// row; the header row itself is never modified. Name cells keep their
// interior spaces.
func StripNumericSpaces(rows [][]string) [][]string {
	if len(rows) == 0 {
		return rows
	}

	header := rows[0]
	var numeric []int
	for i, cell := range header {
		if IsNumericHeader(cell) {
			numeric = append(numeric, i)
		}
	}

	out := make([][]string, 0, len(rows))
	out = append(out, header)
	for _, row := range rows[1:] {
		cleaned := make([]string, len(row))
		copy(cleaned, row)
		for _, i := range numeric {
			if i < len(cleaned) {
				v := strings.ReplaceAll(cleaned[i], " ", " ")
				cleaned[i] = strings.ReplaceAll(v, " ", "")
			}
		}
		out = append(out, cleaned)
	}
	return out
}
