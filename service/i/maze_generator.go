package i

import (
	"github.com/beka-birhanu/dfs-maze/maze"
	"github.com/google/uuid"
)

// MazeRequest describes the maze a caller wants.
type MazeRequest struct {
	Height   int
	Width    int
	Seed     *uint64 // nil picks a fresh seed
	StartRow int
	StartCol int
}

// GeneratedMaze is a carved grid together with what is needed to reproduce it.
type GeneratedMaze struct {
	ID    uuid.UUID
	Seed  uint64
	Start maze.CellPosition
	Grid  *maze.Grid
}

// MazeGenerator creates perfect mazes on request.
type MazeGenerator interface {
	// Generate carves a new maze. The same request with the same seed
	// always yields the same walls.
	Generate(MazeRequest) (*GeneratedMaze, error)
}
