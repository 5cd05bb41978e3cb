package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("bogus"))
}

func TestResolveInputsSingleFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(input, []byte("x"), 0o644))

	inputs, output, err := resolveInputs([]string{input, "out.xml"})
	require.NoError(t, err)

	assert.Equal(t, []string{input}, inputs)
	assert.Equal(t, "out.xml", output)
}

func TestResolveInputsDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.csv", "b.XLSX", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	inputs, output, err := resolveInputs([]string{dir})
	require.NoError(t, err)

	assert.Empty(t, output)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.csv"),
		filepath.Join(dir, "b.XLSX"),
	}, inputs)
}

func TestResolveInputsDirectoryWithOutput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("x"), 0o644))

	_, _, err := resolveInputs([]string{dir, "out.xml"})
	assert.Error(t, err)
}

func TestResolveInputsEmptyDirectory(t *testing.T) {
	_, _, err := resolveInputs([]string{t.TempDir()})
	assert.Error(t, err)
}

func TestResolveInputsMissing(t *testing.T) {
	_, _, err := resolveInputs([]string{filepath.Join(t.TempDir(), "missing.csv")})
	assert.Error(t, err)
}
