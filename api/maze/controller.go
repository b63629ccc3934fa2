package mazeapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/dfs-maze/maze"
	"github.com/beka-birhanu/dfs-maze/service"
	"github.com/beka-birhanu/dfs-maze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// SeedHeader carries the seed of the maze returned as plain text.
	SeedHeader = "X-Maze-Seed"
)

var ErrNilGenerator = errors.New("maze generator is required")

// MazeController serves maze generation requests.
type MazeController struct {
	generator i.MazeGenerator
	logger    i.Logger
}

// NewMazeController initializes a MazeController.
func NewMazeController(g i.MazeGenerator, logger i.Logger) (*MazeController, error) {
	if g == nil {
		return nil, ErrNilGenerator
	}
	if logger == nil {
		return nil, service.ErrNilLogger
	}
	return &MazeController{
		generator: g,
		logger:    logger,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/maze")
	{
		mazes.GET("", mc.maze)
		mazes.GET("/text", mc.mazeText)
	}
}

// maze returns a generated maze as JSON.
func (mc *MazeController) maze(ctx *gin.Context) {
	generated, ok := mc.generate(ctx)
	if !ok {
		return
	}

	grid := generated.Grid
	cells := make([][]CellResponse, grid.Height)
	for row := range cells {
		cells[row] = make([]CellResponse, grid.Width)
		for col := range cells[row] {
			cell := grid.Cell(row, col)
			cells[row][col] = CellResponse{
				North: cell.NorthWall,
				South: cell.SouthWall,
				East:  cell.EastWall,
				West:  cell.WestWall,
			}
		}
	}

	ctx.JSON(http.StatusOK, &MazeResponse{
		ID:          generated.ID.String(),
		Height:      grid.Height,
		Width:       grid.Width,
		Seed:        generated.Seed,
		Start:       PositionResponse{Row: generated.Start.Row, Col: generated.Start.Col},
		OpenedPairs: grid.OpenedPairs(),
		Text:        grid.String(),
		Cells:       cells,
	})
}

// mazeText returns a generated maze in its text rendering.
func (mc *MazeController) mazeText(ctx *gin.Context) {
	generated, ok := mc.generate(ctx)
	if !ok {
		return
	}

	ctx.Header(SeedHeader, strconv.FormatUint(generated.Seed, 10))
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(generated.Grid.String()))
}

// generate binds the query and runs the generator, writing the error
// response itself when it fails.
func (mc *MazeController) generate(ctx *gin.Context) (*i.GeneratedMaze, bool) {
	var query MazeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	generated, err := mc.generator.Generate(i.MazeRequest{
		Height:   query.Height,
		Width:    query.Width,
		Seed:     query.Seed,
		StartRow: query.StartRow,
		StartCol: query.StartCol,
	})
	if err != nil {
		if errors.Is(err, maze.ErrInvalidDimension) ||
			errors.Is(err, maze.ErrOutOfBounds) ||
			errors.Is(err, service.ErrDimensionTooLarge) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}

		mc.logger.Error(fmt.Sprintf("Generating maze: %s", err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return nil, false
	}

	return generated, true
}
