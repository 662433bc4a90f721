package camptrees

import (
	"fmt"
	"strings"
)

// Coordinate addresses one cell of a Grid.
type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(r%d, c%d)", c.Row, c.Col)
}

// Grid is a rectangular, row-major table of tiles. It is constructed once
// and mutated in place by the deduction rules; it is never resized.
type Grid struct {
	cells [][]Tile
}

// NewGrid wraps an existing tile table. The table is not copied.
func NewGrid(cells [][]Tile) *Grid {
	return &Grid{cells}
}

// BlankGrid builds a rows×columns grid of Unassigned tiles.
func BlankGrid(rows, columns int) *Grid {
	cells := make([][]Tile, rows)
	for r := range cells {
		cells[r] = make([]Tile, columns)
	}
	return &Grid{cells}
}

// ParseGrid decodes the textual grid form: one character per cell, rows
// separated by line breaks. It fails on the first unrecognized character.
// Rectangularity is not checked here; the Board checks shape.
func ParseGrid(s string) (*Grid, error) {
	lines := strings.Split(s, "\n")
	cells := make([][]Tile, len(lines))
	for r, line := range lines {
		row := make([]Tile, 0, len(line))
		for _, c := range line {
			tile, err := ParseTile(c)
			if err != nil {
				return nil, err
			}
			row = append(row, tile)
		}
		cells[r] = row
	}
	return &Grid{cells}, nil
}

func (g *Grid) NumRows() int {
	return len(g.cells)
}

func (g *Grid) NumColumns() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// At returns the tile at (row, column). The coordinate must be in bounds.
func (g *Grid) At(row, column int) Tile {
	return g.cells[row][column]
}

func (g *Grid) InBounds(row, column int) bool {
	return row >= 0 && column >= 0 && row < len(g.cells) && column < len(g.cells[row])
}

func (g *Grid) CountInRow(row int, tile Tile) int {
	count := 0
	for column := 0; column < g.NumColumns(); column++ {
		if g.cells[row][column] == tile {
			count++
		}
	}
	return count
}

func (g *Grid) CountInColumn(column int, tile Tile) int {
	count := 0
	for row := 0; row < g.NumRows(); row++ {
		if g.cells[row][column] == tile {
			count++
		}
	}
	return count
}

// SurroundingTiles returns the in-bounds 4-directional neighbors of a cell.
// These are both the deduction neighborhood and, for a Camp, its candidate
// associated Trees.
func (g *Grid) SurroundingTiles(row, column int) []Coordinate {
	coords := make([]Coordinate, 0, 4)
	if row != 0 {
		coords = append(coords, Coordinate{row - 1, column})
	}
	if row+1 != g.NumRows() {
		coords = append(coords, Coordinate{row + 1, column})
	}
	if column != 0 {
		coords = append(coords, Coordinate{row, column - 1})
	}
	if column+1 != g.NumColumns() {
		coords = append(coords, Coordinate{row, column + 1})
	}
	return coords
}

// SetCamp places a Camp at (row, column). If any cell of the surrounding
// 3×3 neighborhood already holds a Camp the placement fails without
// mutating. On success every Unassigned cell of that neighborhood is
// forced to Grass, which is what keeps camps from ever touching.
func (g *Grid) SetCamp(row, column int) error {
	for r := row - 1; r <= row+1; r++ {
		for c := column - 1; c <= column+1; c++ {
			if g.InBounds(r, c) && g.cells[r][c] == Camp {
				return fmt.Errorf("%w at row %d, column %d", ErrAdjacentCamps, row, column)
			}
		}
	}
	g.cells[row][column] = Camp
	for r := row - 1; r <= row+1; r++ {
		for c := column - 1; c <= column+1; c++ {
			if g.InBounds(r, c) && g.cells[r][c] == Unassigned {
				g.cells[r][c] = Grass
			}
		}
	}
	return nil
}

// IsSolved reports whether no Unassigned cell remains.
func (g *Grid) IsSolved() bool {
	for _, row := range g.cells {
		for _, tile := range row {
			if tile == Unassigned {
				return false
			}
		}
	}
	return true
}

// Assigned counts the cells already holding a terminal value.
func (g *Grid) Assigned() int {
	count := 0
	for _, row := range g.cells {
		for _, tile := range row {
			if tile != Unassigned {
				count++
			}
		}
	}
	return count
}

// Size is the total cell count.
func (g *Grid) Size() int {
	size := 0
	for _, row := range g.cells {
		size += len(row)
	}
	return size
}

func (g *Grid) Clone() *Grid {
	cells := make([][]Tile, len(g.cells))
	for r, row := range g.cells {
		cells[r] = make([]Tile, len(row))
		copy(cells[r], row)
	}
	return &Grid{cells}
}

func (g *Grid) Equal(other *Grid) bool {
	if len(g.cells) != len(other.cells) {
		return false
	}
	for r, row := range g.cells {
		if len(row) != len(other.cells[r]) {
			return false
		}
		for c, tile := range row {
			if tile != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// String renders the grid in the same textual form ParseGrid accepts, so
// parsing and re-encoding a grid reproduces the original text exactly.
func (g *Grid) String() string {
	var sb strings.Builder
	for r, row := range g.cells {
		if r != 0 {
			sb.WriteByte('\n')
		}
		for _, tile := range row {
			sb.WriteRune(tile.Rune())
		}
	}
	return sb.String()
}
