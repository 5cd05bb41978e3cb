// =============================================================================
// konvertorMzdy - Document Assembler
// =============================================================================
//
// Maps the normalized table to the accounting document. Every data row yields
// two line items, the debit leg from Účet MD and the credit leg from Účet Dal.
//
// ORDERING LAW:
//   The item sequence is ALL debit items (one per row, in row order) followed
//   by ALL credit items (again in row order). The two sides are separate
//   passes and are never interleaved; the target system books the whole MD
//   side before the Dal side.
//
// =============================================================================

package document

import (
	"fmt"
	"strings"

	"github.com/LukasBenko/konvertorMzdy/internal/cleaner"
)

// MissingColumnsError reports which canonical columns the normalized table
// lacks. Fatal; a document cannot be assembled without all six.
type MissingColumnsError struct {
	// Missing holds the canonical labels of the absent columns.
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// requiredColumns is the assembly order used for error reporting.
var requiredColumns = []cleaner.Column{
	cleaner.ColumnName,
	cleaner.ColumnDebitAccount,
	cleaner.ColumnCreditAccount,
	cleaner.ColumnCostCenter,
	cleaner.ColumnOrder,
	cleaner.ColumnActivity,
}

// Assemble builds the accounting document from a normalized table and the six
// document attributes. Attributes are copied verbatim, trimmed. An empty
// table (zero data rows) is valid and yields a document with no items.
func Assemble(table *cleaner.Table, attrs Attributes) (*Document, error) {
	if len(table.Header) == 0 && len(table.Rows) == 0 {
		// Everything was filtered away during cleaning; an empty-bodied
		// document is still a valid result.
		return &Document{Attrs: trimAttributes(attrs)}, nil
	}

	cols, err := locateColumns(table.Header)
	if err != nil {
		return nil, err
	}

	doc := &Document{Attrs: trimAttributes(attrs)}

	// Two passes over the same rows: debit legs first, then credit legs.
	debit := make([]LineItem, 0, len(table.Rows))
	credit := make([]LineItem, 0, len(table.Rows))

	for _, row := range table.Rows {
		text := cellAt(row, cols[cleaner.ColumnName])
		costCenter := cellAt(row, cols[cleaner.ColumnCostCenter])
		order := cellAt(row, cols[cleaner.ColumnOrder])
		amount := NormalizeAmount(cellAt(row, cols[cleaner.ColumnActivity]))

		debit = append(debit, LineItem{
			Amount:     amount,
			Account:    cellAt(row, cols[cleaner.ColumnDebitAccount]),
			Side:       SideDebit,
			CostCenter: costCenter,
			Order:      order,
			Text:       text,
		})
		credit = append(credit, LineItem{
			Amount:     amount,
			Account:    cellAt(row, cols[cleaner.ColumnCreditAccount]),
			Side:       SideCredit,
			CostCenter: costCenter,
			Order:      order,
			Text:       text,
		})
	}

	doc.Items = append(debit, credit...)
	return doc, nil
}

// trimAttributes copies the document attributes verbatim, trimmed.
func trimAttributes(attrs Attributes) Attributes {
	return Attributes{
		Number:    strings.TrimSpace(attrs.Number),
		Date:      strings.TrimSpace(attrs.Date),
		MandateID: strings.TrimSpace(attrs.MandateID),
		Kind:      strings.TrimSpace(attrs.Kind),
		Type:      strings.TrimSpace(attrs.Type),
		Text:      strings.TrimSpace(attrs.Text),
	}
}

// NormalizeAmount prepares an amount cell for serialization: all spaces are
// removed, and a value with exactly one comma and no period gets the comma
// replaced by a decimal point. Any other punctuation pattern passes through
// unchanged; this stage does no numeric parsing.
func NormalizeAmount(v string) string {
	v = strings.ReplaceAll(v, " ", " ")
	v = strings.ReplaceAll(strings.TrimSpace(v), " ", "")
	if strings.Count(v, ",") == 1 && !strings.Contains(v, ".") {
		v = strings.Replace(v, ",", ".", 1)
	}
	return v
}

// locateColumns finds each canonical column in the normalized header using
// the shared tolerant matcher.
func locateColumns(header []string) (map[cleaner.Column]int, error) {
	cols := make(map[cleaner.Column]int, len(requiredColumns))
	var missing []string
	for _, col := range requiredColumns {
		idx := cleaner.FindColumnIndex(header, col)
		if idx < 0 {
			missing = append(missing, col.Label())
			continue
		}
		cols[col] = idx
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}
	return cols, nil
}

// cellAt reads a cell defensively; normalized rows should match the header
// length but raw passthrough tables may be ragged.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
