// =============================================================================
// konvertorMzdy - Canonical Columns
// =============================================================================
//
// This file declares the six canonical columns of the payroll accounting
// export and the tolerant matching primitives shared by the header locator,
// the column projector, the numeric normalizer and the Activity lookup.
//
// MATCHING MODEL:
//   Each canonical column carries a priority-ordered list of substring
//   patterns. Patterns are matched against a folded form of the header cell:
//   NBSP replaced by a plain space, trimmed, lowercased, diacritics removed.
//   A header cell matches a column when any of the column's patterns occurs
//   as a substring of the folded cell.
//
// =============================================================================

package cleaner

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// =============================================================================
// CANONICAL COLUMN ENUMERATION
// =============================================================================

// Column identifies one of the six canonical columns of the payroll export.
type Column int

const (
	// ColumnName is the line item name ("Názov").
	ColumnName Column = iota

	// ColumnDebitAccount is the debit-side account ("Účet MD").
	ColumnDebitAccount

	// ColumnCreditAccount is the credit-side account ("Účet Dal").
	ColumnCreditAccount

	// ColumnCostCenter is the cost center ("Stred.").
	ColumnCostCenter

	// ColumnOrder is the order / contract number ("Zák.").
	ColumnOrder

	// ColumnActivity is the activity amount ("Činn.").
	ColumnActivity
)

// Label returns the canonical header label as it appears in the export.
func (c Column) Label() string {
	return columnLabels[c]
}

func (c Column) String() string { return c.Label() }

// columnLabels holds the exact header labels, diacritics included.
var columnLabels = map[Column]string{
	ColumnName:          "Názov",
	ColumnDebitAccount:  "Účet MD",
	ColumnCreditAccount: "Účet Dal",
	ColumnCostCenter:    "Stred.",
	ColumnOrder:         "Zák.",
	ColumnActivity:      "Činn.",
}

// columnOrder is the fixed priority order in which canonical columns claim
// header cells. The projector tries each column's patterns in this order and
// the first match wins.
var columnOrder = []Column{
	ColumnName,
	ColumnDebitAccount,
	ColumnCreditAccount,
	ColumnCostCenter,
	ColumnOrder,
	ColumnActivity,
}

// columnPatterns maps each canonical column to its priority-ordered list of
// folded substring patterns. Patterns are pre-folded: lowercase, no
// diacritics.
var columnPatterns = map[Column][]string{
	ColumnName:          {"nazov"},
	ColumnDebitAccount:  {"ucet md", "md"},
	ColumnCreditAccount: {"ucet dal", "dal"},
	ColumnCostCenter:    {"stred"},
	ColumnOrder:         {"zak"},
	ColumnActivity:      {"cinn"},
}

// numericColumns are the columns whose cells carry grouped numeric values and
// get their interior spaces stripped. Name is deliberately not among them.
var numericColumns = []Column{
	ColumnDebitAccount,
	ColumnCreditAccount,
	ColumnCostCenter,
	ColumnOrder,
	ColumnActivity,
}

// =============================================================================
// CELL NORMALIZATION PRIMITIVES
// =============================================================================

// diacriticStripper removes combining marks after NFD decomposition, turning
// e.g. "Účet" into "Ucet".
var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// CleanCell replaces non-breaking spaces with plain spaces and trims
// surrounding whitespace. It is the basic cell normalization applied before
// any comparison.
func CleanCell(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, " ", " "))
}

// FoldCell returns the folded form of a cell used for tolerant matching:
// cleaned, lowercased and with diacritics removed.
func FoldCell(s string) string {
	folded, _, err := transform.String(diacriticStripper, CleanCell(s))
	if err != nil {
		// Malformed input falls back to the cleaned form; matching then
		// degrades to case-insensitive only.
		folded = CleanCell(s)
	}
	return strings.ToLower(folded)
}

// matchesAny reports whether any pattern occurs in the folded text.
func matchesAny(folded string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(folded, p) {
			return true
		}
	}
	return false
}

// MatchColumn matches a header cell against the canonical columns in priority
// order. It returns the first matching column, or ok=false when the cell
// belongs to none of them.
func MatchColumn(headerCell string) (Column, bool) {
	folded := FoldCell(headerCell)
	for _, col := range columnOrder {
		if matchesAny(folded, columnPatterns[col]) {
			return col, true
		}
	}
	return 0, false
}

// IsNumericHeader reports whether a header cell names one of the numeric-ish
// columns (every canonical column except Name).
func IsNumericHeader(headerCell string) bool {
	folded := FoldCell(headerCell)
	for _, col := range numericColumns {
		if matchesAny(folded, columnPatterns[col]) {
			return true
		}
	}
	return false
}

// FindColumnIndex returns the index of the first header cell matching the
// given canonical column, or -1 when none matches.
func FindColumnIndex(header []string, col Column) int {
	for i, cell := range header {
		if matchesAny(FoldCell(cell), columnPatterns[col]) {
			return i
		}
	}
	return -1
}
