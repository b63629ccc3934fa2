package maze

import (
	"fmt"
	"math/rand/v2"
)

// Shuffler permutes n elements through swap. *rand.Rand from math/rand/v2
// satisfies it with a uniform Fisher-Yates shuffle.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Generator carves a perfect maze into a grid with a randomized depth-first traversal.
type Generator struct {
	shuffler Shuffler
}

// frame is one level of the traversal: a visited cell and the shuffled
// neighbors it still has to try.
type frame struct {
	row, col  int
	neighbors []Neighbor
	next      int
}

// NewGenerator returns a Generator drawing its neighbor order from s.
func NewGenerator(s Shuffler) *Generator {
	return &Generator{shuffler: s}
}

// NewSeededGenerator returns a Generator whose output is fully determined by seed.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed)))
}

// Generate visits every cell of g starting at (startRow, startCol) and opens
// one wall pair per newly reached cell, leaving a spanning tree of passages.
//
// The traversal keeps its own stack instead of recursing, but draws from the
// shuffler and visits cells in exactly the order the recursive form would.
func (gen *Generator) Generate(g *Grid, startRow, startCol int) error {
	if !g.InBound(startRow, startCol) {
		return fmt.Errorf("%w: start (%d,%d) in %dx%d grid", ErrOutOfBounds, startRow, startCol, g.Height, g.Width)
	}

	stack := make([]*frame, 0, g.Height*g.Width)
	stack = append(stack, gen.enter(g, startRow, startCol))

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.neighbors) {
			stack = stack[:len(stack)-1]
			continue
		}

		n := top.neighbors[top.next]
		top.next++

		// A sibling branch may have reached this neighbor already.
		if g.Cell(n.Row, n.Col).Visited {
			continue
		}

		g.OpenWallPair(top.row, top.col, n.Direction)
		stack = append(stack, gen.enter(g, n.Row, n.Col))
	}

	return nil
}

// enter marks (row, col) visited and fixes the order its neighbors are tried in.
func (gen *Generator) enter(g *Grid, row, col int) *frame {
	g.Cell(row, col).Visited = true

	neighbors := g.NeighborsOf(row, col)
	if len(neighbors) > 0 {
		gen.shuffler.Shuffle(len(neighbors), func(i, j int) {
			neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
		})
	}

	return &frame{row: row, col: col, neighbors: neighbors}
}
