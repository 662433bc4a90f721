package camptrees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTile(t *testing.T) {
	cases := []struct {
		r    rune
		tile Tile
	}{
		{' ', Unassigned},
		{'-', Grass},
		{'C', Camp},
		{'T', Tree},
	}
	for _, tc := range cases {
		tile, err := ParseTile(tc.r)
		require.NoError(t, err)
		assert.Equal(t, tc.tile, tile)
		assert.Equal(t, tc.r, tile.Rune())
	}
}

func TestParseTileUnknown(t *testing.T) {
	_, err := ParseTile('x')
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'x'")
}
