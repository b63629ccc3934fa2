package maze

import (
	"fmt"
)

// Verify checks that the passages of g form a spanning tree: wall flags
// agree on both sides of every shared wall, the outer border is closed,
// every cell was visited, and the open passages connect all cells using
// exactly Height*Width-1 of them.
func Verify(g *Grid) error {
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			cell := g.Cell(row, col)
			if !cell.Visited {
				return fmt.Errorf("%w: cell (%d,%d) not visited", ErrNotSpanningTree, row, col)
			}

			for _, dir := range directions {
				dRow, dCol := dir.Delta()
				nRow, nCol := row+dRow, col+dCol
				if !g.InBound(nRow, nCol) {
					if !cell.HasWall(dir) {
						return fmt.Errorf("%w: border wall %s of (%d,%d) is open", ErrNotSpanningTree, dir, row, col)
					}
					continue
				}
				if cell.HasWall(dir) != g.Cell(nRow, nCol).HasWall(dir.Opposite()) {
					return fmt.Errorf("%w: wall %s of (%d,%d) is half open", ErrNotSpanningTree, dir, row, col)
				}
			}
		}
	}

	cells := g.Height * g.Width
	if opened := g.OpenedPairs(); opened != cells-1 {
		return fmt.Errorf("%w: %d passages for %d cells", ErrNotSpanningTree, opened, cells)
	}

	// With n-1 edges, connectivity rules out cycles.
	if reached := g.reachable(0, 0); reached != cells {
		return fmt.Errorf("%w: %d of %d cells reachable", ErrNotSpanningTree, reached, cells)
	}

	return nil
}

// reachable counts the cells connected to (row, col) through open passages.
func (g *Grid) reachable(row, col int) int {
	seen := make([][]bool, g.Height)
	for i := range seen {
		seen[i] = make([]bool, g.Width)
	}

	queue := []CellPosition{{Row: row, Col: col}}
	seen[row][col] = true
	count := 0

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		count++

		for _, n := range g.NeighborsOf(pos.Row, pos.Col) {
			if seen[n.Row][n.Col] || !g.IsOpen(pos.Row, pos.Col, n.Direction) {
				continue
			}
			seen[n.Row][n.Col] = true
			queue = append(queue, CellPosition{Row: n.Row, Col: n.Col})
		}
	}

	return count
}
