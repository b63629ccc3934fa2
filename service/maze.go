package service

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/beka-birhanu/dfs-maze/maze"
	"github.com/beka-birhanu/dfs-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 200
)

var (
	ErrDimensionTooLarge = errors.New("maze dimension exceeds the configured maximum")
	ErrNilLogger         = errors.New("logger is required")
)

// MazeOptions configures a MazeService.
type MazeOptions struct {
	// MaxDimension caps both height and width of a requested maze.
	MaxDimension int

	// Seeds supplies a seed when a request carries none.
	Seeds func() uint64
}

// MazeService generates, checks and records mazes for callers.
type MazeService struct {
	logger i.Logger
	opts   *MazeOptions
}

// NewMazeService builds a MazeService. Missing options fall back to defaults.
func NewMazeService(logger i.Logger, opts *MazeOptions) (i.MazeGenerator, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}

	if opts == nil {
		opts = &MazeOptions{}
	}

	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}

	if opts.Seeds == nil {
		opts.Seeds = rand.Uint64
	}

	return &MazeService{
		logger: logger,
		opts:   opts,
	}, nil
}

// Generate implements i.MazeGenerator.
func (ms *MazeService) Generate(req i.MazeRequest) (*i.GeneratedMaze, error) {
	if req.Height > ms.opts.MaxDimension || req.Width > ms.opts.MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d, max %d", ErrDimensionTooLarge, req.Height, req.Width, ms.opts.MaxDimension)
	}

	seed := ms.opts.Seeds()
	if req.Seed != nil {
		seed = *req.Seed
	}

	grid, err := maze.NewGrid(req.Height, req.Width)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	if err := maze.NewSeededGenerator(seed).Generate(grid, req.StartRow, req.StartCol); err != nil {
		return nil, err
	}

	if err := maze.Verify(grid); err != nil {
		ms.logger.Error(fmt.Sprintf("Generated maze failed verification: seed=%d size=%dx%d: %s", seed, req.Height, req.Width, err))
		return nil, err
	}

	generated := &i.GeneratedMaze{
		ID:    uuid.New(),
		Seed:  seed,
		Start: maze.CellPosition{Row: req.StartRow, Col: req.StartCol},
		Grid:  grid,
	}

	ms.logger.Info(fmt.Sprintf("Generated maze: ID=%s Size=%dx%d Seed=%d Start=(%d,%d) Took=%s",
		generated.ID, req.Height, req.Width, seed, req.StartRow, req.StartCol, time.Since(began)))
	return generated, nil
}
