// =============================================================================
// konvertorMzdy - Summary Folder
// =============================================================================
//
// The export interleaves group subtotal rows with the line items of the
// group. Two marker shapes occur:
//
//   Variant A: only column 0 (the group name) and the Activity column are
//              non-empty. The row carries the subtotal of the group that
//              FOLLOWS it; its name applies to subsequent rows with a blank
//              name cell.
//   Variant B: only the Activity column is non-empty. A bare subtotal with
//              no name; the previously remembered group name stays armed.
//
// Both marker shapes are dropped from the output. While a group name is
// remembered it is copied into every following row whose own name cell is
// blank; a row that names itself disarms the pending name.
//
// =============================================================================

package cleaner

// foldState is the ephemeral state threaded through the single left-to-right
// folding pass.
type foldState struct {
	// pending is the group name remembered from the last Variant A marker.
	// Empty means no name is armed.
	pending string
}

// nonEmptyIndexes returns the indexes of the cells that are non-empty after
// cleaning.
func nonEmptyIndexes(row []string) []int {
	var idx []int
	for i, cell := range row {
		if CleanCell(cell) != "" {
			idx = append(idx, i)
		}
	}
	return idx
}

// isSummaryVariantA reports whether the row is a named group marker: exactly
// the cell at column 0 and the cell at the Activity index are non-empty.
// When the Activity index is 0 the two positions collapse into one.
func isSummaryVariantA(row []string, activityIdx int) bool {
	idx := nonEmptyIndexes(row)
	if activityIdx == 0 {
		return len(idx) == 1 && idx[0] == 0
	}
	return len(idx) == 2 && idx[0] == 0 && idx[1] == activityIdx
}

// isSummaryVariantB reports whether the row is a bare marker: only the
// Activity cell is non-empty.
func isSummaryVariantB(row []string, activityIdx int) bool {
	idx := nonEmptyIndexes(row)
	return len(idx) == 1 && idx[0] == activityIdx
}

// ActivityIndex finds the Activity column in the header. When the header has
// no Activity column the last column stands in for it; subtotal markers in
// such exports carry their amount in the right-most cell.
func ActivityIndex(header []string) int {
	if i := FindColumnIndex(header, ColumnActivity); i >= 0 {
		return i
	}
	if len(header) == 0 {
		return 0
	}
	return len(header) - 1
}

// FoldSummaries removes subtotal marker rows and forward-fills their group
// name into following rows with a blank name cell. The input has the header
// at index 0. Returns the folded table, the number of rows whose name was
// filled, and the number of marker rows removed (a trailing marker with no
// rows after it included).
func FoldSummaries(rows [][]string) (out [][]string, filled, removed int) {
	if len(rows) == 0 {
		return rows, 0, 0
	}

	header := rows[0]
	activityIdx := ActivityIndex(header)

	out = make([][]string, 0, len(rows))
	out = append(out, header)
	var state foldState

	for _, row := range rows[1:] {
		if isSummaryVariantA(row, activityIdx) {
			state.pending = CleanCell(row[0])
			removed++
			continue
		}
		if isSummaryVariantB(row, activityIdx) {
			// The armed name survives a bare marker; a group total may be
			// split over several marker-only rows.
			removed++
			continue
		}

		first := ""
		if len(row) > 0 {
			first = CleanCell(row[0])
		}
		if first == "" && state.pending != "" {
			patched := make([]string, len(row))
			copy(patched, row)
			patched[0] = state.pending
			row = patched
			filled++
		}
		if first != "" {
			// A self-named item starts; the remembered group no longer
			// applies.
			state.pending = ""
		}
		out = append(out, row)
	}

	// A marker at the very end has no rows left to name and is dropped too.
	if len(out) > 1 {
		last := out[len(out)-1]
		if isSummaryVariantA(last, activityIdx) || isSummaryVariantB(last, activityIdx) {
			out = out[:len(out)-1]
			removed++
		}
	}

	return out, filled, removed
}
