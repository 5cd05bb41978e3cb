package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanFullPipeline(t *testing.T) {
	raw := [][]string{
		{"Prehľad miezd za september 2025"},
		{"Firma: Example s.r.o."},
		{},
		{"Názov", "Účet MD", "Účet Dal", "Stred.", "Zák.", "Činn."},
		{"", ""},
		{"Hrubé mzdy", "", "", "", "", "1 350,00"},
		{"", "5 21", "331", "10", "", "1 000,00"},
		{"", "521", "331", "10", "", "350,00"},
		{"Výplata v hotovosti", "", "", "", "", ""},
		{"Odvody", "524", "336", "10", "20", "475,50"},
		{"Vypracoval: Jana Nováková"},
		{"Dňa: 30.09.2025"},
	}

	table, stats, err := Clean(raw)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.PreambleRows)
	assert.True(t, stats.TrailerFound)
	assert.Equal(t, 1, stats.RemovedSummaries)
	assert.Equal(t, 2, stats.FilledNames)
	assert.Equal(t, 1, stats.ExcludedNames)
	assert.Equal(t, 3, stats.RowsOut)

	assert.Equal(t, []string{"Názov", "Účet MD", "Účet Dal", "Stred.", "Zák.", "Činn."}, table.Header)
	assert.Equal(t, [][]string{
		{"Hrubé mzdy", "521", "331", "10", "", "1000,00"},
		{"Hrubé mzdy", "521", "331", "10", "", "350,00"},
		{"Odvody", "524", "336", "10", "20", "475,50"},
	}, table.Rows)
}

func TestCleanExcludesCashPayoutRow(t *testing.T) {
	raw := [][]string{
		{"Názov", "Účet MD", "Účet Dal", "Stred.", "Zák.", "Činn."},
		{"Mzdy", "221", "521", "10", "20", "100,50"},
		{"Výplata v hotovosti", "", "", "", "", ""},
	}

	table, stats, err := Clean(raw)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.ExcludedNames)
	assert.Equal(t, [][]string{
		{"Mzdy", "221", "521", "10", "20", "100,50"},
	}, table.Rows)
}

func TestCleanHeaderNotFound(t *testing.T) {
	raw := [][]string{
		{"a", "b"},
		{"c", "d"},
	}

	_, _, err := Clean(raw)
	assert.ErrorIs(t, err, ErrHeaderNotFound)
}

func TestCleanEverythingFilteredAway(t *testing.T) {
	// Only the header and the trailer survive reading; the result is a
	// valid table with zero data rows, not an error.
	raw := [][]string{
		{"Názov", "Účet MD", "Účet Dal", "Činn."},
		{"", "", "", ""},
		{"Vypracoval: Jana"},
	}

	table, stats, err := Clean(raw)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.RowsOut)
	assert.Empty(t, table.Rows)
}

func TestTableAsRows(t *testing.T) {
	table := &Table{
		Header: []string{"Názov", "Činn."},
		Rows:   [][]string{{"Mzdy", "100,00"}},
	}

	assert.Equal(t, [][]string{
		{"Názov", "Činn."},
		{"Mzdy", "100,00"},
	}, table.AsRows())

	assert.Nil(t, (&Table{}).AsRows())
}
