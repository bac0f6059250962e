package game

import (
	"fmt"

	"pizzacut/internal/core"
)

// Env is one snapshot of a game, in the layout written to env files.
type Env struct {
	State       State       `json:"state"`
	Reward      float64     `json:"reward"`
	Done        bool        `json:"done"`
	Information Information `json:"information"`
}

// State is the board as seen by an observer.
type State struct {
	IngredientsMap [][]int `json:"ingredients_map"`
	// SlicesMap holds the owning slice id per cell, -1 where unassigned.
	SlicesMap      [][]int `json:"slices_map"`
	CursorPosition [2]int  `json:"cursor_position"`
	SliceMode      bool    `json:"slice_mode"`
	MinEach        int     `json:"min_each_ingredient_per_slice"`
	MaxCells       int     `json:"max_ingredients_per_slice"`
}

// Information carries bookkeeping that is not part of the board.
type Information struct {
	Step              int      `json:"step"`
	Action            string   `json:"action"`
	UniqueIngredients []string `json:"unique_ingredients"`
	Score             int      `json:"score"`
	// Slices are the valid slices as [r0, c0, r1, c1], sorted.
	Slices [][4]int `json:"slices"`
	GameID string   `json:"game_id,omitempty"`
}

// Size returns the grid dimensions.
func (e Env) Size() core.Size {
	rows := len(e.State.IngredientsMap)
	if rows == 0 {
		return core.Size{}
	}
	return core.Size{Rows: rows, Cols: len(e.State.IngredientsMap[0])}
}

// Cursor returns the cursor position.
func (e Env) Cursor() core.Point {
	return core.Point{R: e.State.CursorPosition[0], C: e.State.CursorPosition[1]}
}

// Parameters returns the information panel contents.
func (e Env) Parameters() core.ParameterSnapshot {
	size := e.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Pizza",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows:", size.Rows),
				core.IntParam("columns", "Columns:", size.Cols),
				core.IntParam("min_each", "Min each ingredient per slice:", e.State.MinEach),
				core.IntParam("max_cells", "Max ingredients per slice:", e.State.MaxCells),
			},
		},
		{
			Name: "Last action",
			Params: []core.Parameter{
				core.StringParam("action", "Last action:", e.Information.Action),
				core.FloatParam("reward", "Last reward:", e.Reward),
			},
		},
		{
			Name: "Cursor",
			Params: []core.Parameter{
				core.StringParam("cursor", "Cursor position:", fmt.Sprintf("(%d,%d)", e.State.CursorPosition[0], e.State.CursorPosition[1])),
				core.BoolParam("slice_mode", "Slice mode:", e.State.SliceMode),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				core.IntParam("step", "Step:", e.Information.Step),
				core.IntParam("score", "Score:", e.Information.Score),
			},
		},
	}}
}

var _ core.Viewable = Env{}
