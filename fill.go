package camptrees

// FillZeros fills the remaining Unassigned cells of every row and column
// whose camp quota is already met with Grass.
func FillZeros(b *Board) bool {
	Watch.Start("FillZeros")
	defer Watch.Stop("FillZeros")
	g := b.Grid
	changed := false
	for row := range b.Rows {
		if g.CountInRow(row, Camp) != b.Rows[row] {
			continue
		}
		for column := range b.Columns {
			if g.At(row, column) == Unassigned {
				g.cells[row][column] = Grass
				changed = true
			}
		}
	}
	for column := range b.Columns {
		if g.CountInColumn(column, Camp) != b.Columns[column] {
			continue
		}
		for row := range b.Rows {
			if g.At(row, column) == Unassigned {
				g.cells[row][column] = Grass
				changed = true
			}
		}
	}
	return changed
}

// FillCamps places camps in every row and column where the Unassigned cells
// plus the existing camps exactly meet the quota: each Unassigned cell must
// become a camp to reach it. Placement goes through SetCamp, so neighboring
// Unassigned cells are forced to Grass as a side effect. Tree adjacency is
// not checked here; InitializeGrass has already removed cells that can't
// serve a camp.
func FillCamps(b *Board) bool {
	Watch.Start("FillCamps")
	defer Watch.Stop("FillCamps")
	g := b.Grid
	changed := false
	for row := range b.Rows {
		if b.Rows[row] != g.CountInRow(row, Unassigned)+g.CountInRow(row, Camp) {
			continue
		}
		for column := range b.Columns {
			if g.At(row, column) != Unassigned {
				continue
			}
			if err := g.SetCamp(row, column); err != nil {
				// Contradictory input; leave the cell for the
				// intersection pass to report.
				continue
			}
			changed = true
		}
	}
	for column := range b.Columns {
		if b.Columns[column] != g.CountInColumn(column, Unassigned)+g.CountInColumn(column, Camp) {
			continue
		}
		for row := range b.Rows {
			if g.At(row, column) != Unassigned {
				continue
			}
			if err := g.SetCamp(row, column); err != nil {
				continue
			}
			changed = true
		}
	}
	return changed
}
