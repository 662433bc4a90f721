package camptrees

import "fmt"

// Tile is the state of a single grid cell.
type Tile int

const (
	Unassigned Tile = iota
	Grass
	Camp
	Tree
)

// ParseTile decodes the single-character form of a Tile.
func ParseTile(r rune) (Tile, error) {
	switch r {
	case ' ':
		return Unassigned, nil
	case '-':
		return Grass, nil
	case 'C':
		return Camp, nil
	case 'T':
		return Tree, nil
	}
	return Unassigned, fmt.Errorf("couldn't parse tile: %q", r)
}

// Rune encodes a Tile as its single-character form.
func (t Tile) Rune() rune {
	switch t {
	case Grass:
		return '-'
	case Camp:
		return 'C'
	case Tree:
		return 'T'
	}
	return ' '
}

func (t Tile) String() string {
	return string(t.Rune())
}
