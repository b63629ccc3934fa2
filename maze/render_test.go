package maze

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		height int
		width  int
		carve  func(g *Grid)
		want   string
	}{
		{
			name:   "Single closed cell",
			height: 1,
			width:  1,
			carve:  func(*Grid) {},
			want:   " _\n|_|\n",
		},
		{
			name:   "Closed grid",
			height: 2,
			width:  3,
			carve:  func(*Grid) {},
			want:   " _____\n|_|_|_|\n|_|_|_|\n",
		},
		{
			name:   "Corridor",
			height: 1,
			width:  3,
			carve: func(g *Grid) {
				g.OpenWallPair(0, 0, East)
				g.OpenWallPair(0, 1, East)
			},
			want: " _____\n|_ _ _|\n",
		},
		{
			name:   "Vertical passage",
			height: 2,
			width:  2,
			carve: func(g *Grid) {
				g.OpenWallPair(0, 1, South)
			},
			want: " ___\n|_| |\n|_|_|\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.height, tt.width)
			require.NoError(t, err)
			tt.carve(g)

			var buf bytes.Buffer
			require.NoError(t, Render(&buf, g))
			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, tt.want, g.String())
		})
	}

	t.Run("Top border width", func(t *testing.T) {
		g := generate(t, 4, 9, 5)
		lines := g.Rows()

		require.Len(t, lines, 4)
		for _, line := range lines {
			assert.Len(t, line, 2*9+1)
			assert.Equal(t, byte('|'), line[0])
			assert.Equal(t, byte('|'), line[len(line)-1], "east border stays closed")
		}
		assert.Equal(t, " _________________\n", g.String()[:2*9+1])
	})

	t.Run("Writer error is returned", func(t *testing.T) {
		g, err := NewGrid(2, 2)
		require.NoError(t, err)
		assert.Error(t, Render(failingWriter{}, g))
	})
}
