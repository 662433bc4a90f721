package camptrees

import "errors"

var (
	// ErrAdjacentCamps indicates a camp placement that would touch another
	// camp, including diagonally.
	ErrAdjacentCamps = errors.New("camptrees: camps next to each other")
	// ErrDimensionMismatch indicates quota vectors that don't match the
	// grid's dimensions.
	ErrDimensionMismatch = errors.New("camptrees: quota vectors don't match grid dimensions")
	// ErrNoPossibility indicates a row or column with no legal camp
	// placement left; the puzzle input is contradictory.
	ErrNoPossibility = errors.New("camptrees: no legal camp placement")
	// ErrSteadyState indicates the deduction rules reached a fixed point
	// without fully resolving the board.
	ErrSteadyState = errors.New("camptrees: reached steady state")
)
