// Package mazeapi provides structures and utilities for serving generated mazes over HTTP.
package mazeapi

// MazeQuery holds the query parameters of a maze request.
type MazeQuery struct {
	Height   int     `form:"height" binding:"required"`
	Width    int     `form:"width" binding:"required"`
	Seed     *uint64 `form:"seed"`
	StartRow int     `form:"start_row"`
	StartCol int     `form:"start_col"`
}

// PositionResponse is a cell position.
type PositionResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CellResponse lists which walls of a cell are closed.
type CellResponse struct {
	North bool `json:"north"`
	South bool `json:"south"`
	East  bool `json:"east"`
	West  bool `json:"west"`
}

// MazeResponse represents a generated maze.
type MazeResponse struct {
	ID          string           `json:"id"`
	Height      int              `json:"height"`
	Width       int              `json:"width"`
	Seed        uint64           `json:"seed,string"`
	Start       PositionResponse `json:"start"`
	OpenedPairs int              `json:"opened_pairs"`
	Text        string           `json:"text"`
	Cells       [][]CellResponse `json:"cells"`
}
