package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/beka-birhanu/dfs-maze/api"
	api_i "github.com/beka-birhanu/dfs-maze/api/i"
	mazeapi "github.com/beka-birhanu/dfs-maze/api/maze"
	"github.com/beka-birhanu/dfs-maze/config"
	logger "github.com/beka-birhanu/dfs-maze/infrastruture/log"
	"github.com/beka-birhanu/dfs-maze/maze"
	"github.com/beka-birhanu/dfs-maze/service"
	"github.com/beka-birhanu/dfs-maze/service/i"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	mazeService    i.MazeGenerator
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *logger.Logger
	httpLogger     *logger.Logger
)

// Command line flags
var (
	serve    = flag.Bool("serve", false, "run the HTTP API instead of printing one maze")
	height   = flag.Int("height", config.Envs.DefaultMazeHeight, "maze height in cells")
	width    = flag.Int("width", config.Envs.DefaultMazeWidth, "maze width in cells")
	seed     = flag.Uint64("seed", 0, "random seed (0 picks one)")
	startRow = flag.Int("row", 0, "row of the traversal start cell")
	startCol = flag.Int("col", 0, "column of the traversal start cell")
)

func initMazeService() {
	serviceLogger, err := logger.New("MAZE-SERVICE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeService(serviceLogger, &service.MazeOptions{
		MaxDimension: config.Envs.MaxMazeDimension,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	httpLogger, err = logger.New("HTTP", config.ColorBlue, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating HTTP logger: %v", err))
		os.Exit(1)
	}

	mazeController, err = mazeapi.NewMazeController(mazeService, httpLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
		Middlewares: []gin.HandlerFunc{api.RequestID(), api.RequestLogger(httpLogger)},
	})
	appLogger.Info("Router initialized")
}

// printMaze generates a single maze from the command line flags and writes it to stdout.
func printMaze() {
	opts := []maze.Option{maze.WithStart(*startRow, *startCol)}
	if *seed != 0 {
		opts = append(opts, maze.WithSeed(*seed))
	}

	grid, err := maze.CreateMazeWithOptions(*height, *width, opts...)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Generating maze: %v", err))
		os.Exit(1)
	}

	if err := maze.Render(os.Stdout, grid); err != nil {
		appLogger.Error(fmt.Sprintf("Printing maze: %v", err))
		os.Exit(1)
	}
}

func main() {
	flag.Parse()

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stderr)

	if !*serve {
		printMaze()
		return
	}

	initMazeService()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
