package benchmark

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendCSVRowWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	header := "backend,out_w,out_h,mean_ms"

	require.NoError(t, AppendCSVRow(path, header, "seq,100,100,1.5"))

	lines := readLines(t, path)
	require.Len(t, lines, 2, "first append writes header plus one row")
	assert.Equal(t, header, lines[0])
	assert.Equal(t, "seq,100,100,1.5", lines[1])

	require.NoError(t, AppendCSVRow(path, header, "parallel,100,100,0.4"))

	lines = readLines(t, path)
	require.Len(t, lines, 3, "second append adds exactly one row")
	assert.Equal(t, header, lines[0])
	assert.Equal(t, "parallel,100,100,0.4", lines[2])
	assert.Equal(t, 1, strings.Count(strings.Join(lines, "\n"), header),
		"header must never repeat")
}

func TestAppendCSVRowEmptyFileGetsHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	require.NoError(t, AppendCSVRow(path, "h1,h2", "a,b"))
	lines := readLines(t, path)
	require.Len(t, lines, 2)
	assert.Equal(t, "h1,h2", lines[0])
}

func TestAppendCSVRowNoHeaderRequested(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.csv")
	require.NoError(t, AppendCSVRow(path, "", "a,b"))

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "a,b", lines[0])
}

func TestAppendCSVRowOpenFailure(t *testing.T) {
	// A directory path cannot be opened for append.
	dir := t.TempDir()
	err := AppendCSVRow(dir, "h", "r")
	assert.Error(t, err)
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}
