package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// closedWalls counts every closed wall flag of g.
func closedWalls(g *Grid) int {
	count := 0
	for row := range g.Cells {
		for col := range g.Cells[row] {
			for _, dir := range directions {
				if g.Cell(row, col).HasWall(dir) {
					count++
				}
			}
		}
	}
	return count
}

func TestNewGrid(t *testing.T) {
	t.Run("Rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 5}, {5, -3}, {0, 0}} {
			g, err := NewGrid(dims[0], dims[1])
			assert.ErrorIs(t, err, ErrInvalidDimension)
			assert.Nil(t, g)
		}
	})

	t.Run("Builds closed unvisited cells", func(t *testing.T) {
		g, err := NewGrid(3, 4)
		require.NoError(t, err)

		assert.Equal(t, 3, g.Height)
		assert.Equal(t, 4, g.Width)
		require.Len(t, g.Cells, 3)
		for row := range g.Cells {
			require.Len(t, g.Cells[row], 4)
			for col, cell := range g.Cells[row] {
				assert.Equal(t, CellPosition{Row: row, Col: col}, cell.Position)
				assert.True(t, cell.NorthWall)
				assert.True(t, cell.SouthWall)
				assert.True(t, cell.EastWall)
				assert.True(t, cell.WestWall)
				assert.False(t, cell.Visited)
			}
		}
		assert.Equal(t, 0, g.OpenedPairs())
	})
}

func TestDirection(t *testing.T) {
	tests := []struct {
		dir      Direction
		opposite Direction
		dRow     int
		dCol     int
		name     string
	}{
		{North, South, -1, 0, "North"},
		{South, North, 1, 0, "South"},
		{East, West, 0, 1, "East"},
		{West, East, 0, -1, "West"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.opposite, tt.dir.Opposite())
			assert.Equal(t, tt.dir, tt.dir.Opposite().Opposite())
			dRow, dCol := tt.dir.Delta()
			assert.Equal(t, tt.dRow, dRow)
			assert.Equal(t, tt.dCol, dCol)
			assert.Equal(t, tt.name, tt.dir.String())
		})
	}
}

func TestNeighborsOf(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	t.Run("Corner omits out-of-bounds directions", func(t *testing.T) {
		assert.Equal(t, []Neighbor{
			{Direction: South, Row: 1, Col: 0},
			{Direction: East, Row: 0, Col: 1},
		}, g.NeighborsOf(0, 0))

		assert.Equal(t, []Neighbor{
			{Direction: North, Row: 1, Col: 2},
			{Direction: West, Row: 2, Col: 1},
		}, g.NeighborsOf(2, 2))
	})

	t.Run("Center lists all four in fixed order", func(t *testing.T) {
		assert.Equal(t, []Neighbor{
			{Direction: North, Row: 0, Col: 1},
			{Direction: South, Row: 2, Col: 1},
			{Direction: East, Row: 1, Col: 2},
			{Direction: West, Row: 1, Col: 0},
		}, g.NeighborsOf(1, 1))
	})

	t.Run("Repeated calls are stable and side-effect free", func(t *testing.T) {
		before, err := NewGrid(3, 3)
		require.NoError(t, err)

		first := g.NeighborsOf(0, 1)
		second := g.NeighborsOf(0, 1)
		assert.Equal(t, first, second)
		assert.Equal(t, before, g)
	})

	t.Run("Single cell has no neighbors", func(t *testing.T) {
		single, err := NewGrid(1, 1)
		require.NoError(t, err)
		assert.Empty(t, single.NeighborsOf(0, 0))
	})
}

func TestOpenWallPair(t *testing.T) {
	for _, dir := range directions {
		t.Run(dir.String(), func(t *testing.T) {
			g, err := NewGrid(3, 3)
			require.NoError(t, err)
			before := closedWalls(g)

			changed := g.OpenWallPair(1, 1, dir)

			dRow, dCol := dir.Delta()
			assert.Equal(t, 2, changed)
			assert.Equal(t, before-2, closedWalls(g))
			assert.False(t, g.Cell(1, 1).HasWall(dir))
			assert.False(t, g.Cell(1+dRow, 1+dCol).HasWall(dir.Opposite()))
			assert.True(t, g.IsOpen(1, 1, dir))
			assert.True(t, g.IsOpen(1+dRow, 1+dCol, dir.Opposite()))
			assert.Equal(t, 1, g.OpenedPairs())
		})
	}

	t.Run("Opening twice changes nothing more", func(t *testing.T) {
		g, err := NewGrid(2, 2)
		require.NoError(t, err)

		assert.Equal(t, 2, g.OpenWallPair(0, 0, East))
		assert.Equal(t, 0, g.OpenWallPair(0, 1, West))
		assert.Equal(t, 1, g.OpenedPairs())
	})
}

func TestIsOpen(t *testing.T) {
	g, err := NewGrid(2, 2)
	require.NoError(t, err)

	assert.False(t, g.IsOpen(0, 0, North), "border is never open")
	assert.False(t, g.IsOpen(0, 0, South))
	assert.False(t, g.IsOpen(5, 5, South), "out of bounds")

	// Only one side cleared is not a passage.
	g.Cell(0, 0).SouthWall = false
	assert.False(t, g.IsOpen(0, 0, South))
}
