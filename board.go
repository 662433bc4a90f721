package camptrees

import "fmt"

// Board owns one Grid plus the per-row and per-column camp quotas for the
// puzzle's lifetime.
type Board struct {
	// Rows holds the required number of camps on every row.
	Rows []int
	// Columns holds the required number of camps on every column.
	Columns []int
	Grid    *Grid
}

// NewBoard builds a Board, failing fast if the quota vectors don't match
// the grid's shape: len(rows) must equal the grid's row count and every
// grid row must be exactly len(columns) wide.
func NewBoard(rows, columns []int, grid *Grid) (*Board, error) {
	if grid.NumRows() != len(rows) {
		return nil, fmt.Errorf("%w: grid has %d rows, row quotas describe %d",
			ErrDimensionMismatch, grid.NumRows(), len(rows))
	}
	for r, row := range grid.cells {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: grid row %d has %d columns, column quotas describe %d",
				ErrDimensionMismatch, r, len(row), len(columns))
		}
	}
	return &Board{Rows: rows, Columns: columns, Grid: grid}, nil
}

// ParseBoard wraps ParseGrid and NewBoard.
func ParseBoard(rows, columns []int, s string) (*Board, error) {
	grid, err := ParseGrid(s)
	if err != nil {
		return nil, err
	}
	return NewBoard(rows, columns, grid)
}

// NewBlankBoard builds a Board over a blank grid of the matching size.
func NewBlankBoard(rows, columns []int) *Board {
	b, _ := NewBoard(rows, columns, BlankGrid(len(rows), len(columns)))
	return b
}

func (b *Board) At(row, column int) Tile {
	return b.Grid.At(row, column)
}

func (b *Board) NumRows() int {
	return b.Grid.NumRows()
}

func (b *Board) NumColumns() int {
	return b.Grid.NumColumns()
}

func (b *Board) CountInRow(row int, tile Tile) int {
	return b.Grid.CountInRow(row, tile)
}

func (b *Board) CountInColumn(column int, tile Tile) int {
	return b.Grid.CountInColumn(column, tile)
}

func (b *Board) IsSolved() bool {
	return b.Grid.IsSolved()
}

func (b *Board) String() string {
	return b.Grid.String()
}

// Solve mutates the Board in place toward the strongest state the deduction
// rules can derive. On success the Board is fully assigned; if the rules
// reach a fixed point short of that, the returned error carries a rendering
// of the stuck board.
func (b *Board) Solve() error {
	s := Solver{b: b}
	return s.Solve()
}
