// =============================================================================
// konvertorMzdy - XML Writer
// =============================================================================
//
// Renders the assembled accounting document as the uctovne_doklady XML the
// target system imports:
//
//   <?xml version="1.0"?>
//   <uctovne_doklady>
//     <uctovny_doklad cislo_ud="250901" datum_ud="30.09.2025" mandant_id="1" ...>
//       <polozka_ud suma="100.50" ucet="221" strana="M" os="10" eo="20" text_pud="Mzdy"/>
//       ...
//     </uctovny_doklad>
//   </uctovne_doklady>
//
// FORMATTING CONTRACT (bit-for-bit):
//   - declaration line exactly <?xml version="1.0"?> (no encoding attribute)
//   - two spaces of indentation per nesting level, no blank lines
//   - attribute order fixed: document cislo_ud, datum_ud, mandant_id,
//     druh_ud, typ_ud, text_ud; item suma, ucet, strana, os, eo, text_pud
//   - empty attributes omitted unless KeepEmpty is set
//   - single trailing newline
//
// encoding/xml cannot guarantee attribute order on marshaling structs with
// optional attributes, so elements are written by hand into a buffer.
//
// =============================================================================

package xmlwriter

import (
	"bytes"
	"fmt"

	"github.com/LukasBenko/konvertorMzdy/internal/document"
)

// Element names of the output document.
const (
	rootElement     = "uctovne_doklady"
	documentElement = "uctovny_doklad"
	itemElement     = "polozka_ud"
)

// declaration is the exact first line of the output.
const declaration = `<?xml version="1.0"?>`

// Options controls serialization.
type Options struct {
	// Indent is the per-level indentation string.
	Indent string

	// KeepEmpty emits empty attributes as attr="" instead of omitting them.
	KeepEmpty bool
}

// DefaultOptions returns the contract defaults: two-space indent, empty
// attributes omitted.
func DefaultOptions() Options {
	return Options{Indent: "  "}
}

// attr is a name/value pair written in slice order.
type attr struct {
	name  string
	value string
}

// Marshal renders the document with default options.
func Marshal(doc *document.Document) []byte {
	return MarshalWithOptions(doc, DefaultOptions())
}

// MarshalWithOptions renders the document under the formatting contract.
func MarshalWithOptions(doc *document.Document, options Options) []byte {
	var buf bytes.Buffer

	buf.WriteString(declaration)
	buf.WriteByte('\n')

	buf.WriteString("<" + rootElement + ">\n")
	writeDocumentElement(&buf, doc, options)
	buf.WriteString("</" + rootElement + ">\n")

	return buf.Bytes()
}

// writeDocumentElement writes the uctovny_doklad element and its items.
func writeDocumentElement(buf *bytes.Buffer, doc *document.Document, options Options) {
	attrs := []attr{
		{"cislo_ud", doc.Attrs.Number},
		{"datum_ud", doc.Attrs.Date},
		{"mandant_id", doc.Attrs.MandateID},
		{"druh_ud", doc.Attrs.Kind},
		{"typ_ud", doc.Attrs.Type},
		{"text_ud", doc.Attrs.Text},
	}

	buf.WriteString(options.Indent)
	buf.WriteString("<" + documentElement)
	writeAttrs(buf, attrs, options.KeepEmpty)

	if len(doc.Items) == 0 {
		buf.WriteString("/>\n")
		return
	}
	buf.WriteString(">\n")

	for _, item := range doc.Items {
		writeItemElement(buf, item, options)
	}

	buf.WriteString(options.Indent)
	buf.WriteString("</" + documentElement + ">\n")
}

// writeItemElement writes one self-closing polozka_ud element.
func writeItemElement(buf *bytes.Buffer, item document.LineItem, options Options) {
	attrs := []attr{
		{"suma", item.Amount},
		{"ucet", item.Account},
		{"strana", string(item.Side)},
		{"os", item.CostCenter},
		{"eo", item.Order},
		{"text_pud", item.Text},
	}

	buf.WriteString(options.Indent)
	buf.WriteString(options.Indent)
	buf.WriteString("<" + itemElement)
	writeAttrs(buf, attrs, options.KeepEmpty)
	buf.WriteString("/>\n")
}

// writeAttrs writes attributes in slice order, skipping empty values unless
// keepEmpty is set.
func writeAttrs(buf *bytes.Buffer, attrs []attr, keepEmpty bool) {
	for _, a := range attrs {
		if a.value == "" && !keepEmpty {
			continue
		}
		fmt.Fprintf(buf, ` %s="%s"`, a.name, escapeXML(a.value))
	}
}

// escapeXML escapes the characters XML attribute values cannot carry raw.
func escapeXML(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&apos;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
