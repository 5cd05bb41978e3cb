package charsetx

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUTF8WithBOM(t *testing.T) {
	raw := append([]byte{0xef, 0xbb, 0xbf}, []byte("Názov;Účet MD")...)

	text, encoding, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, "utf-8-sig", encoding)
	assert.Equal(t, "Názov;Účet MD", text)
}

func TestDecodePlainUTF8(t *testing.T) {
	text, encoding, err := Decode([]byte("Výplata v hotovosti"))
	require.NoError(t, err)

	// BOM-less UTF-8 is already accepted by the first candidate.
	assert.Equal(t, "utf-8-sig", encoding)
	assert.Equal(t, "Výplata v hotovosti", text)
}

func TestDecodeWindows1250(t *testing.T) {
	// "Názov" in cp1250: á=0xE1, plus ý=0xFD as in "Výplata". Neither byte
	// run is valid UTF-8.
	raw := []byte{'N', 0xE1, 'z', 'o', 'v', ';', 'V', 0xFD, 'p', 'l', 'a', 't', 'a'}

	text, encoding, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, "cp1250", encoding)
	assert.Equal(t, "Názov;Výplata", text)
}

func TestDecodeEmptyInput(t *testing.T) {
	text, encoding, err := Decode(nil)
	require.NoError(t, err)

	assert.Equal(t, "utf-8-sig", encoding)
	assert.Equal(t, "", text)
}

func TestDecodeWithNoCandidateMatches(t *testing.T) {
	failing := []Candidate{
		{Name: "never", Decode: func([]byte) (string, error) {
			return "", fmt.Errorf("nope")
		}},
	}

	_, _, err := DecodeWith([]byte("anything"), failing)
	assert.ErrorIs(t, err, ErrEncodingUndetectable)
}

func TestDecodeWithCandidateOrder(t *testing.T) {
	candidates := []Candidate{
		{Name: "first", Decode: func([]byte) (string, error) {
			return "", fmt.Errorf("nope")
		}},
		{Name: "second", Decode: func(raw []byte) (string, error) {
			return string(raw), nil
		}},
	}

	text, encoding, err := DecodeWith([]byte("abc"), candidates)
	require.NoError(t, err)

	assert.Equal(t, "second", encoding)
	assert.Equal(t, "abc", text)
}

func TestDefaultCandidateOrder(t *testing.T) {
	var names []string
	for _, c := range DefaultCandidates() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"utf-8-sig", "utf-8", "cp1250", "latin-1"}, names)
}
