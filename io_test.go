package camptrees

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCamps(t *testing.T) {
	_, err := ReadCamps("")
	assert.Error(t, err)

	camps, err := ReadCamps("1")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, camps)

	camps, err = ReadCamps("1, 2, 3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, camps)

	_, err = ReadCamps("1, x")
	assert.Error(t, err)

	_, err = ReadCamps("1, -2")
	assert.Error(t, err)
}

func TestParseLinesTooLittleInput(t *testing.T) {
	_, err := ParseLines(nil)
	assert.Error(t, err)
	_, err = ParseLines([]string{"0", "0"})
	assert.Error(t, err)
}

func TestParseLines2x2(t *testing.T) {
	b, err := ParseLines([]string{"1, 0", "1, 0", " T", "  "})
	require.NoError(t, err)
	want := mustParseBoard(t, []int{1, 0}, []int{1, 0}, " T\n  ")
	assert.Equal(t, want.Rows, b.Rows)
	assert.Equal(t, want.Columns, b.Columns)
	assert.True(t, want.Grid.Equal(b.Grid))
}

func TestBoardFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	require.NoError(t, os.WriteFile(path, []byte("1, 0\n1, 0\n T\n  \n"), 0o644))
	b, err := BoardFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, " T\n  ", b.String())

	_, err = BoardFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
