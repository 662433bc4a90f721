package camptrees

import (
	"fmt"

	"github.com/gammazero/deque"
)

// frame is one pending branch of the line enumeration: a grid snapshot, the
// number of camps still to place, and the next line index to consider.
type frame struct {
	grid  *Grid
	count int
	index int
}

// enumerateLine collects every whole-grid snapshot in which exactly count
// camps have been legally added to the line's Unassigned cells. A line is an
// ordered sequence of coordinates; rows and columns differ only in the
// coordinates they supply. Illegal placements are pruned by SetCamp, so
// adjacent-camp states are never produced. The enumeration walks an explicit
// work-list instead of the call stack, keeping it safe for long lines.
func enumerateLine(g *Grid, line []Coordinate, count int) []*Grid {
	var possibilities []*Grid
	var work deque.Deque[frame]
	work.PushBack(frame{g.Clone(), count, 0})
	for work.Len() > 0 {
		f := work.PopBack()
		if f.count == 0 {
			possibilities = append(possibilities, f.grid)
			continue
		}
		if f.index == len(line) {
			// Not enough room left for the remaining camps.
			continue
		}
		at := line[f.index]
		if f.grid.At(at.Row, at.Col) == Unassigned {
			trial := f.grid.Clone()
			if trial.SetCamp(at.Row, at.Col) == nil {
				work.PushBack(frame{trial, f.count - 1, f.index + 1})
			}
		}
		// Skip this cell and advance; the branch above reuses the
		// snapshot it cloned, this one keeps the original.
		work.PushBack(frame{f.grid, f.count, f.index + 1})
	}
	return possibilities
}

// intersect reduces the possibilities to the strongest grid they all agree
// on: a cell keeps its value when it is identical across every possibility
// and reverts to Unassigned when it varies.
func intersect(possibilities []*Grid) (*Grid, error) {
	if len(possibilities) == 0 {
		return nil, ErrNoPossibility
	}
	grid := possibilities[0]
	for _, next := range possibilities[1:] {
		for row := 0; row < grid.NumRows(); row++ {
			for column := 0; column < grid.NumColumns(); column++ {
				if grid.At(row, column) != next.At(row, column) {
					grid.cells[row][column] = Unassigned
				}
			}
		}
	}
	return grid, nil
}

func rowLine(g *Grid, row int) []Coordinate {
	line := make([]Coordinate, g.NumColumns())
	for column := range line {
		line[column] = Coordinate{row, column}
	}
	return line
}

func columnLine(g *Grid, column int) []Coordinate {
	line := make([]Coordinate, g.NumRows())
	for row := range line {
		line[row] = Coordinate{row, column}
	}
	return line
}

// processLine enumerates the line's possibilities and applies their
// intersection to the board. The intersection covers the whole grid
// snapshot, so grass forced onto adjacent lines by a camp placement
// participates too.
func processLine(b *Board, line []Coordinate, count int) (bool, error) {
	grid, err := intersect(enumerateLine(b.Grid, line, count))
	if err != nil {
		return false, err
	}
	if b.Grid.Equal(grid) {
		return false, nil
	}
	b.Grid = grid
	return true, nil
}

// ProcessIntersections runs the enumerate-and-intersect deduction over every
// row, then every column. A line with no legal possibility means the input
// quotas are contradictory; that is reported as an error naming the line
// rather than recovered.
func ProcessIntersections(b *Board) (bool, error) {
	Watch.Start("ProcessIntersections")
	defer Watch.Stop("ProcessIntersections")
	changed := false
	for row := range b.Rows {
		count := b.Rows[row] - b.CountInRow(row, Camp)
		lineChanged, err := processLine(b, rowLine(b.Grid, row), count)
		if err != nil {
			return changed, fmt.Errorf("%w for row %d", err, row)
		}
		changed = changed || lineChanged
	}
	for column := range b.Columns {
		count := b.Columns[column] - b.CountInColumn(column, Camp)
		lineChanged, err := processLine(b, columnLine(b.Grid, column), count)
		if err != nil {
			return changed, fmt.Errorf("%w for column %d", err, column)
		}
		changed = changed || lineChanged
	}
	return changed, nil
}
