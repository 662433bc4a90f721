package camptrees

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(table *associations, rows, columns int) [][]associationKind {
	out := make([][]associationKind, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]associationKind, columns)
		for c := 0; c < columns; c++ {
			out[r][c] = table.at(r, c).kind
		}
	}
	return out
}

func TestAssociateCellTreeWithoutCamp(t *testing.T) {
	g := mustParseGrid(t, " T \n   \n   ")
	table := newAssociations(3, 3)
	associateCell(g, 0, 1, table)
	assert.Equal(t, [][]associationKind{
		{noTree, noCampAssociated, noTree},
		{unprocessed, noTree, unprocessed},
		{unprocessed, unprocessed, unprocessed},
	}, kinds(table, 3, 3))
}

func TestAssociateCellBooksUniqueTree(t *testing.T) {
	g := mustParseGrid(t, " TC\n --\n   ")
	table := newAssociations(3, 3)
	associateCell(g, 0, 1, table)
	assert.Equal(t, [][]associationKind{
		{noTree, campAt, noTree},
		{unprocessed, noTree, noTree},
		{unprocessed, unprocessed, unprocessed},
	}, kinds(table, 3, 3))
	assert.Equal(t, Coordinate{0, 2}, table.at(0, 1).camp)
}

func TestAssociateTreesHorizontal(t *testing.T) {
	g := mustParseGrid(t, " TC\n---\n---")
	assert.True(t, AssociateTrees(g))
	assert.Equal(t, "-TC\n---\n---", g.String())
}

// The camp's tree is booked, so the cell on the tree's other side can't be
// a camp serving it.
func TestAssociateTreesFillsBookedNeighborhood(t *testing.T) {
	g := mustParseGrid(t, "---\n TC\n---")
	assert.True(t, AssociateTrees(g))
	assert.Equal(t, "---\n-TC\n---", g.String())
}

// With two candidate trees the association is ambiguous and nothing is
// deduced.
func TestAssociateTreesConservative(t *testing.T) {
	g := mustParseGrid(t, "T--\n TC\nT--")
	assert.False(t, AssociateTrees(g))
	assert.Equal(t, "T--\n TC\nT--", g.String())
}

func TestAssociateTreesIdempotent(t *testing.T) {
	g := mustParseGrid(t, " TC\n---\n---")
	assert.True(t, AssociateTrees(g))
	assert.False(t, AssociateTrees(g))
	assert.Equal(t, "-TC\n---\n---", g.String())
}
