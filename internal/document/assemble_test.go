package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LukasBenko/konvertorMzdy/internal/cleaner"
)

var testHeader = []string{"Názov", "Účet MD", "Účet Dal", "Stred.", "Zák.", "Činn."}

func TestAssembleTwoItemsPerRow(t *testing.T) {
	table := &cleaner.Table{
		Header: testHeader,
		Rows: [][]string{
			{"Mzdy", "221", "521", "10", "20", "100,50"},
		},
	}

	doc, err := Assemble(table, Attributes{Number: "250901"})
	require.NoError(t, err)
	require.Len(t, doc.Items, 2)

	assert.Equal(t, LineItem{
		Amount:     "100.50",
		Account:    "221",
		Side:       SideDebit,
		CostCenter: "10",
		Order:      "20",
		Text:       "Mzdy",
	}, doc.Items[0])
	assert.Equal(t, LineItem{
		Amount:     "100.50",
		Account:    "521",
		Side:       SideCredit,
		CostCenter: "10",
		Order:      "20",
		Text:       "Mzdy",
	}, doc.Items[1])
}

func TestAssembleOrderingLaw(t *testing.T) {
	// All debit legs come first, in row order, then all credit legs, again
	// in row order. The sides are never interleaved per row.
	table := &cleaner.Table{
		Header: testHeader,
		Rows: [][]string{
			{"R1", "521", "331", "", "", "1,00"},
			{"R2", "524", "336", "", "", "2,00"},
		},
	}

	doc, err := Assemble(table, Attributes{})
	require.NoError(t, err)
	require.Len(t, doc.Items, 4)

	type leg struct {
		text string
		side Side
	}
	var got []leg
	for _, item := range doc.Items {
		got = append(got, leg{item.Text, item.Side})
	}

	assert.Equal(t, []leg{
		{"R1", SideDebit},
		{"R2", SideDebit},
		{"R1", SideCredit},
		{"R2", SideCredit},
	}, got)
}

func TestAssembleMissingColumns(t *testing.T) {
	table := &cleaner.Table{
		Header: []string{"Názov", "Účet MD", "Účet Dal"},
		Rows:   [][]string{{"Mzdy", "521", "331"}},
	}

	_, err := Assemble(table, Attributes{})
	require.Error(t, err)

	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"Stred.", "Zák.", "Činn."}, missing.Missing)
	assert.Contains(t, err.Error(), "Stred.")
}

func TestAssembleEmptyTable(t *testing.T) {
	// A table where cleaning removed every row yields a valid document
	// with no items, not an error.
	doc, err := Assemble(&cleaner.Table{}, Attributes{Number: " 250901 "})
	require.NoError(t, err)

	assert.Empty(t, doc.Items)
	assert.Equal(t, "250901", doc.Attrs.Number)
}

func TestAssembleTrimsAttributes(t *testing.T) {
	table := &cleaner.Table{
		Header: testHeader,
		Rows:   [][]string{{"Mzdy", "521", "331", "", "", "1,00"}},
	}

	doc, err := Assemble(table, Attributes{
		Number:    " 250901 ",
		Date:      "30.09.2025\t",
		MandateID: "1",
		Kind:      " ID mzdy",
		Type:      "I",
		Text:      "  Mzdy 09/2025  ",
	})
	require.NoError(t, err)

	assert.Equal(t, Attributes{
		Number:    "250901",
		Date:      "30.09.2025",
		MandateID: "1",
		Kind:      "ID mzdy",
		Type:      "I",
		Text:      "Mzdy 09/2025",
	}, doc.Attrs)
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "grouped with comma", input: "1 234,56", expected: "1234.56"},
		{name: "NBSP grouping", input: "1 234,56", expected: "1234.56"},
		{name: "decimal point untouched", input: "1234.56", expected: "1234.56"},
		{name: "two commas pass through", input: "1,2,3", expected: "1,2,3"},
		{name: "comma and period pass through", input: "1,234.56", expected: "1,234.56"},
		{name: "plain integer", input: "100", expected: "100"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeAmount(tt.input))
		})
	}
}
