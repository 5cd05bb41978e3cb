// =============================================================================
// konvertorMzdy - Character Set Resolution
// =============================================================================
//
// The reporting system exports CSV in whatever encoding the workstation was
// configured with; UTF-8 with a BOM, plain UTF-8 and Windows-1250 all occur
// in the wild. This package tries a fixed ordered list of candidates and
// returns the text decoded by the first one that accepts the bytes.
//
// =============================================================================

package charsetx

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrEncodingUndetectable is returned when no candidate encoding decodes the
// input. Fatal; the file cannot be read.
var ErrEncodingUndetectable = errors.New("could not detect file encoding")

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Candidate is one entry of the ordered decode list.
type Candidate struct {
	// Name identifies the encoding in reports and logs.
	Name string

	// Decode returns the decoded text, or an error when the bytes are not
	// valid in this encoding.
	Decode func(raw []byte) (string, error)
}

// DefaultCandidates is the fixed candidate order used for payroll exports:
// UTF-8 with BOM, plain UTF-8, Windows-1250, Latin-1.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{Name: "utf-8-sig", Decode: decodeUTF8SIG},
		{Name: "utf-8", Decode: decodeUTF8},
		{Name: "cp1250", Decode: decodeCharmap(charmap.Windows1250)},
		{Name: "latin-1", Decode: decodeCharmap(charmap.ISO8859_1)},
	}
}

// Decode resolves the encoding of raw using the default candidate list and
// returns the decoded text together with the name of the encoding used.
func Decode(raw []byte) (text, encoding string, err error) {
	return DecodeWith(raw, DefaultCandidates())
}

// DecodeWith resolves the encoding of raw against an explicit candidate list,
// in order. The first candidate that decodes without error wins.
func DecodeWith(raw []byte, candidates []Candidate) (text, encoding string, err error) {
	for _, c := range candidates {
		decoded, decErr := c.Decode(raw)
		if decErr == nil {
			return decoded, c.Name, nil
		}
	}
	return "", "", ErrEncodingUndetectable
}

// decodeUTF8SIG strips a UTF-8 BOM when present and validates the rest. Like
// Python's utf-8-sig it also accepts BOM-less UTF-8.
func decodeUTF8SIG(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	return decodeUTF8(raw)
}

func decodeUTF8(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("invalid UTF-8 sequence")
	}
	return string(raw), nil
}

// decodeCharmap decodes a single-byte code page. Bytes without a mapping in
// the code page come out as U+FFFD; those are treated as a decode failure so
// the next candidate gets a chance, mirroring a strict decoder.
func decodeCharmap(cm *charmap.Charmap) func(raw []byte) (string, error) {
	return func(raw []byte) (string, error) {
		decoded, err := cm.NewDecoder().Bytes(raw)
		if err != nil {
			return "", err
		}
		text := string(decoded)
		if strings.ContainsRune(text, utf8.RuneError) {
			return "", fmt.Errorf("byte without mapping in %s", cm)
		}
		return text, nil
	}
}
