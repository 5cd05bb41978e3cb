// =============================================================================
// konvertorMzdy - Header Locator
// =============================================================================
//
// Payroll exports open with an arbitrary preamble (report title, period,
// company data) before the actual column header. This file finds the header
// row so the caller can discard everything above it.
//
// TWO-TIER RULE:
//   Primary:  the first cell, cleaned, equals the canonical Name label
//             exactly, and the row joined with ";" contains the canonical
//             DebitAccount and CreditAccount labels.
//   Fallback: the joined row contains the Name, DebitAccount and
//             CreditAccount labels anywhere, in any cell.
//   The primary pass is exhausted over the whole table before the fallback
//   pass begins, so a stricter later match beats a looser earlier one.
//
// =============================================================================

package cleaner

import (
	"errors"
	"strings"
)

// ErrHeaderNotFound is returned when no row satisfies the primary or the
// fallback header rule. The run aborts; there is nothing to convert.
var ErrHeaderNotFound = errors.New("header row not found")

// FindHeaderIndex scans the raw table top to bottom and returns the index of
// the header row.
func FindHeaderIndex(rows [][]string) (int, error) {
	nameLabel := ColumnName.Label()
	debitLabel := ColumnDebitAccount.Label()
	creditLabel := ColumnCreditAccount.Label()

	// Primary pass: exact Name in the first cell plus both account labels
	// somewhere in the row.
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		joined := strings.Join(row, ";")
		if CleanCell(row[0]) == nameLabel &&
			strings.Contains(joined, debitLabel) &&
			strings.Contains(joined, creditLabel) {
			return i, nil
		}
	}

	// Fallback pass: all three labels anywhere in the joined row.
	for i, row := range rows {
		joined := strings.Join(row, ";")
		if strings.Contains(joined, nameLabel) &&
			strings.Contains(joined, debitLabel) &&
			strings.Contains(joined, creditLabel) {
			return i, nil
		}
	}

	return 0, ErrHeaderNotFound
}
