package camptrees

// associationKind tags a cell during one AssociateTrees invocation.
type associationKind int

const (
	// unprocessed marks a cell not yet visited.
	unprocessed associationKind = iota
	// campAt marks a Tree whose camp is uniquely determined.
	campAt
	// noCampAssociated marks a Tree with no associated camp so far.
	noCampAssociated
	// unassignedCamp marks a Camp with no associated tree.
	unassignedCamp
	// noTree marks anything with no unassociated-tree concern: grass,
	// unassigned cells, and camps whose tree is resolved.
	noTree
)

// association is one entry of the scratch table. camp is meaningful only
// for the campAt kind.
type association struct {
	kind associationKind
	camp Coordinate
}

// associations is a flat table indexed row*width+column, built fresh for a
// single AssociateTrees call and discarded afterwards.
type associations struct {
	width int
	cells []association
}

func newAssociations(rows, columns int) *associations {
	return &associations{width: columns, cells: make([]association, rows*columns)}
}

func (a *associations) at(row, column int) association {
	return a.cells[row*a.width+column]
}

func (a *associations) set(row, column int, assoc association) {
	a.cells[row*a.width+column] = assoc
}

// associateCell populates the table entry for one cell, spreading through
// connected trees and camps. The unprocessed guard bounds the mutual
// recursion at one visit per cell.
func associateCell(g *Grid, row, column int, table *associations) {
	if table.at(row, column).kind != unprocessed {
		return
	}
	switch g.At(row, column) {
	case Tree:
		table.set(row, column, association{kind: noCampAssociated})
		for _, n := range g.SurroundingTiles(row, column) {
			associateCell(g, n.Row, n.Col, table)
		}
	case Camp:
		table.set(row, column, association{kind: unassignedCamp})
		for _, n := range g.SurroundingTiles(row, column) {
			associateCell(g, n.Row, n.Col, table)
		}
		// A legally placed camp has 1 to 4 tree neighbors. With
		// exactly one the association is forced; with more it is
		// ambiguous and left alone.
		var trees []Coordinate
		for _, n := range g.SurroundingTiles(row, column) {
			if g.At(n.Row, n.Col) == Tree {
				trees = append(trees, n)
			}
		}
		if len(trees) == 1 {
			table.set(trees[0].Row, trees[0].Col, association{kind: campAt, camp: Coordinate{row, column}})
			table.set(row, column, association{kind: noTree})
		}
	default:
		table.set(row, column, association{kind: noTree})
	}
}

// AssociateTrees infers, for every camp with a uniquely determined adjacent
// tree, that the tree is booked, then fills with Grass every Unassigned cell
// whose tree neighbors are all booked: such a cell cannot serve an unserved
// tree, so it can't be a camp.
func AssociateTrees(g *Grid) bool {
	Watch.Start("AssociateTrees")
	defer Watch.Stop("AssociateTrees")
	table := newAssociations(g.NumRows(), g.NumColumns())
	for row := 0; row < g.NumRows(); row++ {
		for column := 0; column < g.NumColumns(); column++ {
			associateCell(g, row, column, table)
		}
	}
	changed := false
	for row := 0; row < g.NumRows(); row++ {
		for column := 0; column < g.NumColumns(); column++ {
			if g.At(row, column) != Unassigned {
				continue
			}
			free := false
			for _, n := range g.SurroundingTiles(row, column) {
				if g.At(n.Row, n.Col) == Tree && table.at(n.Row, n.Col).kind != campAt {
					free = true
					break
				}
			}
			if !free {
				g.cells[row][column] = Grass
				changed = true
			}
		}
	}
	return changed
}
