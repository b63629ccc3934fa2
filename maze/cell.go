package maze

// Direction identifies one of the four sides of a cell.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// directions lists every Direction in the order neighbors are reported.
var directions = [...]Direction{North, South, East, West}

// Opposite returns the side of the adjacent cell that shares the wall.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Delta returns the row and column offset of the adjacent cell in direction d.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	default:
		return 0, -1
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Neighbor describes an in-bounds cell adjacent to another one.
type Neighbor struct {
	Direction Direction // Side of the origin cell the neighbor lies on
	Row       int       // Row index of the neighbor
	Col       int       // Column index of the neighbor
}

// Cell represents a single cell in a maze grid.
// It includes properties for walls on each side and whether generation has reached it.
type Cell struct {
	Position  CellPosition // Position of the cell in its grid.
	NorthWall bool         // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool         // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool         // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool         // WestWall indicates whether there is a wall on the west side of the cell.
	Visited   bool         // Visited is set once the generator reaches the cell and never cleared.
}

// newCell returns a cell at (row, col) with all four walls closed.
func newCell(row, col int) Cell {
	return Cell{
		Position:  CellPosition{Row: row, Col: col},
		NorthWall: true,
		SouthWall: true,
		EastWall:  true,
		WestWall:  true,
	}
}

// HasWall reports whether the wall on side d is closed.
func (c *Cell) HasWall(d Direction) bool {
	return *c.wall(d)
}

// clearWall opens the wall on side d and reports whether it was closed before.
func (c *Cell) clearWall(d Direction) bool {
	w := c.wall(d)
	was := *w
	*w = false
	return was
}

func (c *Cell) wall(d Direction) *bool {
	switch d {
	case North:
		return &c.NorthWall
	case South:
		return &c.SouthWall
	case East:
		return &c.EastWall
	default:
		return &c.WestWall
	}
}
