package camptrees

// InitializeGrass fills every Unassigned cell that has no Tree among its
// 4-directional neighbors with Grass: a camp must touch a tree, so such a
// cell can never host one. Single forward pass, idempotent.
func InitializeGrass(b *Board) bool {
	Watch.Start("InitializeGrass")
	defer Watch.Stop("InitializeGrass")
	g := b.Grid
	changed := false
	for row := 0; row < g.NumRows(); row++ {
		for column := 0; column < g.NumColumns(); column++ {
			if g.At(row, column) != Unassigned {
				continue
			}
			nearTree := false
			for _, n := range g.SurroundingTiles(row, column) {
				if g.At(n.Row, n.Col) == Tree {
					nearTree = true
					break
				}
			}
			if !nearTree {
				g.cells[row][column] = Grass
				changed = true
			}
		}
	}
	return changed
}
