package maze

import (
	"bufio"
	"io"
	"strings"
)

// Render writes the grid as text: a top border of 2*Width-1 underscores,
// then one line per row showing each cell's south and east walls.
func Render(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)

	// Top boundary
	_, _ = bw.WriteString(" " + strings.Repeat("_", 2*g.Width-1) + "\n")

	for _, line := range g.Rows() {
		_, _ = bw.WriteString(line + "\n")
	}

	return bw.Flush()
}

// Rows returns the per-row lines of the rendering, without the top border.
func (g *Grid) Rows() []string {
	rows := make([]string, 0, g.Height)
	for row := 0; row < g.Height; row++ {
		var b strings.Builder
		b.Grow(2*g.Width + 1)
		b.WriteByte('|')
		for col := 0; col < g.Width; col++ {
			cell := g.Cell(row, col)

			// Add south wall or space
			if cell.SouthWall {
				b.WriteByte('_')
			} else {
				b.WriteByte(' ')
			}

			// Add east wall or space
			if cell.EastWall {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
		}
		rows = append(rows, b.String())
	}
	return rows
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	var b strings.Builder
	_ = Render(&b, g)
	return b.String()
}
