package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCell(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "Mzdy", expected: "Mzdy"},
		{name: "surrounding whitespace", input: "  Mzdy \t", expected: "Mzdy"},
		{name: "non-breaking spaces", input: " Účet MD ", expected: "Účet MD"},
		{name: "only NBSP", input: "  ", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanCell(tt.input))
		})
	}
}

func TestFoldCell(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "diacritics removed", input: "Účet MD", expected: "ucet md"},
		{name: "lowercased", input: "NÁZOV", expected: "nazov"},
		{name: "trimmed and folded", input: "  Činn. ", expected: "cinn."},
		{name: "NBSP normalized before folding", input: "Účet Dal", expected: "ucet dal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FoldCell(tt.input))
		})
	}
}

func TestMatchColumn(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		expected Column
		ok       bool
	}{
		{name: "exact name label", cell: "Názov", expected: ColumnName, ok: true},
		{name: "debit account", cell: "Účet MD", expected: ColumnDebitAccount, ok: true},
		{name: "credit account", cell: "Účet Dal", expected: ColumnCreditAccount, ok: true},
		{name: "cost center", cell: "Stred.", expected: ColumnCostCenter, ok: true},
		{name: "order", cell: "Zák.", expected: ColumnOrder, ok: true},
		{name: "activity", cell: "Činn.", expected: ColumnActivity, ok: true},
		{name: "case and diacritic variant", cell: "UCET DAL", expected: ColumnCreditAccount, ok: true},
		{name: "bare MD variant", cell: "MD", expected: ColumnDebitAccount, ok: true},
		{name: "embedded label", cell: "Názov položky", expected: ColumnName, ok: true},
		{name: "unrelated header", cell: "Poznámka", ok: false},
		{name: "empty cell", cell: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, ok := MatchColumn(tt.cell)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, col)
			}
		})
	}
}

func TestMatchColumnPriorityOrder(t *testing.T) {
	// A cell matching both Name and a later column is claimed by Name; the
	// canonical order decides, not pattern specificity.
	col, ok := MatchColumn("Názov MD")
	assert.True(t, ok)
	assert.Equal(t, ColumnName, col)
}

func TestIsNumericHeader(t *testing.T) {
	tests := []struct {
		cell    string
		numeric bool
	}{
		{"Názov", false},
		{"Účet MD", true},
		{"Účet Dal", true},
		{"Stred.", true},
		{"Zák.", true},
		{"Činn.", true},
		{"Poznámka", false},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			assert.Equal(t, tt.numeric, IsNumericHeader(tt.cell))
		})
	}
}

func TestFindColumnIndex(t *testing.T) {
	header := []string{"Názov", "Účet MD", "Účet Dal", "Stred.", "Zák.", "Činn."}

	assert.Equal(t, 0, FindColumnIndex(header, ColumnName))
	assert.Equal(t, 1, FindColumnIndex(header, ColumnDebitAccount))
	assert.Equal(t, 2, FindColumnIndex(header, ColumnCreditAccount))
	assert.Equal(t, 5, FindColumnIndex(header, ColumnActivity))

	assert.Equal(t, -1, FindColumnIndex([]string{"A", "B"}, ColumnActivity))
	assert.Equal(t, -1, FindColumnIndex(nil, ColumnName))
}

func TestColumnLabel(t *testing.T) {
	assert.Equal(t, "Názov", ColumnName.Label())
	assert.Equal(t, "Účet MD", ColumnDebitAccount.Label())
	assert.Equal(t, "Činn.", ColumnActivity.String())
}
