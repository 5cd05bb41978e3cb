// =============================================================================
// konvertorMzdy - Accounting Document Model
// =============================================================================
//
// Types for the assembled accounting document: the six document attributes,
// the debit/credit line items and the document itself. The XML writer renders
// these; nothing here knows about markup.
//
// =============================================================================

package document

// Side is the leg of a line item.
type Side string

const (
	// SideDebit is the "MD" (má dať) leg, serialized as "M".
	SideDebit Side = "M"

	// SideCredit is the "Dal" leg, serialized as "D".
	SideCredit Side = "D"
)

// Attributes are the six scalar attributes of the uctovny_doklad element, in
// their serialization order.
type Attributes struct {
	// Number is the document number (cislo_ud).
	Number string

	// Date is the document date (datum_ud).
	Date string

	// MandateID identifies the mandant (mandant_id).
	MandateID string

	// Kind is the document kind (druh_ud), e.g. "ID mzdy".
	Kind string

	// Type is the document type (typ_ud), e.g. "I".
	Type string

	// Text is the free document text (text_ud).
	Text string
}

// LineItem is one polozka_ud: a single leg derived from a normalized row.
// Exactly two items are derived per row, one per side, sharing everything
// but the account and the side.
type LineItem struct {
	// Amount is the row amount as text, decimal point notation.
	Amount string

	// Account is the debit or credit account of this leg.
	Account string

	// Side is the leg this item represents.
	Side Side

	// CostCenter is the cost center (os).
	CostCenter string

	// Order is the order number (eo).
	Order string

	// Text is the line item text (text_pud).
	Text string
}

// Document is the assembled accounting document. Items is partitioned into a
// contiguous debit prefix followed by a contiguous credit suffix; within each
// partition items keep the order of their source rows.
type Document struct {
	Attrs Attributes
	Items []LineItem
}
