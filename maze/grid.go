package maze

import (
	"fmt"
)

// Grid is a rectangular maze made of Height rows of Width cells.
type Grid struct {
	Width  int      // Width of the maze (number of columns)
	Height int      // Height of the maze (number of rows)
	Cells  [][]Cell // 2D grid of cells, indexed [row][col]
}

// NewGrid allocates a height x width grid with every wall closed and no cell visited.
func NewGrid(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, height, width)
	}

	cells := make([][]Cell, height)
	for row := range cells {
		cells[row] = make([]Cell, width)
		for col := range cells[row] {
			cells[row][col] = newCell(row, col)
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}, nil
}

// InBound reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// Cell returns the cell at (row, col). It panics if the position is out of bounds.
func (g *Grid) Cell(row, col int) *Cell {
	return &g.Cells[row][col]
}

// NeighborsOf returns the in-bounds cells adjacent to (row, col),
// always in the order North, South, East, West.
func (g *Grid) NeighborsOf(row, col int) []Neighbor {
	result := make([]Neighbor, 0, len(directions))
	for _, dir := range directions {
		dRow, dCol := dir.Delta()
		nRow, nCol := row+dRow, col+dCol
		if g.InBound(nRow, nCol) {
			result = append(result, Neighbor{Direction: dir, Row: nRow, Col: nCol})
		}
	}
	return result
}

// OpenWallPair removes the wall on side dir of (row, col) together with the
// facing wall of the adjacent cell. The adjacent cell must be in bounds.
// It returns the number of wall flags that changed.
func (g *Grid) OpenWallPair(row, col int, dir Direction) int {
	dRow, dCol := dir.Delta()

	changed := 0
	if g.Cell(row, col).clearWall(dir) {
		changed++
	}
	if g.Cell(row+dRow, col+dCol).clearWall(dir.Opposite()) {
		changed++
	}
	return changed
}

// IsOpen reports whether a passage leads from (row, col) towards dir.
// A passage requires both flags of the wall pair to be cleared.
func (g *Grid) IsOpen(row, col int, dir Direction) bool {
	dRow, dCol := dir.Delta()
	if !g.InBound(row, col) || !g.InBound(row+dRow, col+dCol) {
		return false
	}
	return !g.Cell(row, col).HasWall(dir) && !g.Cell(row+dRow, col+dCol).HasWall(dir.Opposite())
}

// OpenedPairs counts the open passages between adjacent cells.
// Each passage is counted once, from its north or west side.
func (g *Grid) OpenedPairs() int {
	count := 0
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.IsOpen(row, col, South) {
				count++
			}
			if g.IsOpen(row, col, East) {
				count++
			}
		}
	}
	return count
}
