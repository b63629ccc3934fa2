/*
Package maze provides tools for creating and rendering perfect rectangular mazes.

It defines the `Grid` structure, composed of `Cell` objects that carry wall
configurations and a visited flag.

Mazes are carved with a randomized depth-first traversal: starting from one
cell, the generator shuffles the neighbors of the current cell and descends
into every neighbor not reached yet, opening the wall pair between them. The
result is a spanning tree over the grid, so exactly one path joins any two cells.

The random source is injected, which makes a maze reproducible from its seed.
*/
package maze

import (
	"errors"
	"time"
)

var (
	ErrInvalidDimension = errors.New("invalid maze dimensions")
	ErrOutOfBounds      = errors.New("position is out of the maze")
	ErrNotSpanningTree  = errors.New("maze is not a spanning tree")
)

// options configures CreateMazeWithOptions.
type options struct {
	start    CellPosition
	shuffler Shuffler
}

// Option customizes maze creation.
type Option func(*options)

// WithSeed makes the generated maze a pure function of seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.shuffler = NewSeededGenerator(seed).shuffler
	}
}

// WithShuffler draws the neighbor order from s.
func WithShuffler(s Shuffler) Option {
	return func(o *options) {
		o.shuffler = s
	}
}

// WithStart begins the traversal at (row, col) instead of the top-left cell.
func WithStart(row, col int) Option {
	return func(o *options) {
		o.start = CellPosition{Row: row, Col: col}
	}
}

// CreateMaze allocates a height x width grid and carves a maze into it,
// starting at (0,0) with a time-seeded random source.
func CreateMaze(height, width int) (*Grid, error) {
	return CreateMazeWithOptions(height, width)
}

// CreateMazeWithOptions allocates a height x width grid and carves a maze into it.
func CreateMazeWithOptions(height, width int, opts ...Option) (*Grid, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.shuffler == nil {
		o.shuffler = NewSeededGenerator(uint64(time.Now().UnixNano())).shuffler
	}

	grid, err := NewGrid(height, width)
	if err != nil {
		return nil, err
	}

	if err := NewGenerator(o.shuffler).Generate(grid, o.start.Row, o.start.Col); err != nil {
		return nil, err
	}
	return grid, nil
}
