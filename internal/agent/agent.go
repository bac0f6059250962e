package agent

import (
	"slices"

	"pizzacut/internal/core"
	"pizzacut/internal/pizza"
)

// Agent moves a cursor over the grid and, in slice mode, grows the slice
// under the cursor. It keeps a running score equal to the total cell count of
// the valid slices on the board.
type Agent struct {
	ingredients *pizza.Ingredients
	grid        *pizza.SliceGrid
	minEach     int
	maxCells    int
	rewards     Rewards

	cursor    core.Point
	sliceMode bool
	score     int
	valid     map[pizza.Slice]struct{}
}

// New validates cfg and builds a fresh board with the cursor at (0,0).
func New(cfg pizza.Config, rewards Rewards) (*Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	in, err := pizza.NewIngredients(cfg.Lines)
	if err != nil {
		return nil, err
	}
	return &Agent{
		ingredients: in,
		grid:        pizza.NewSliceGrid(in),
		minEach:     cfg.L,
		maxCells:    cfg.H,
		rewards:     rewards,
		valid:       map[pizza.Slice]struct{}{},
	}, nil
}

// Do applies one action and returns its reward. Unknown actions return an
// error wrapping ErrInvalidAction and leave the agent untouched.
func (a *Agent) Do(token string) (float64, error) {
	action, err := ParseAction(token)
	if err != nil {
		return 0, err
	}
	if action == ActionToggle {
		a.sliceMode = !a.sliceMode
		return a.rewards.Neutral, nil
	}
	d, _ := pizza.ParseDirection(string(action))
	if a.sliceMode {
		return a.grow(d), nil
	}
	return a.move(d), nil
}

func (a *Agent) move(d pizza.Direction) float64 {
	next := a.cursor.Add(d.Delta())
	if !a.grid.Size().Contains(next) {
		return a.rewards.Negative
	}
	a.cursor = next
	return a.rewards.Neutral
}

func (a *Agent) grow(d pizza.Direction) float64 {
	current := a.grid.SliceAt(a.cursor.R, a.cursor.C)
	grown, ok := a.grid.TryGrow(current, d, a.maxCells)
	if !ok {
		return a.rewards.Negative
	}
	delta := a.ScoreOf(grown) - a.ScoreOf(current)
	delete(a.valid, current)
	if a.ScoreOf(grown) > 0 {
		a.valid[grown] = struct{}{}
	}
	a.score += delta
	if delta == 0 {
		return a.rewards.Neutral
	}
	return float64(delta) * a.rewards.Positive
}

// ScoreOf returns the cell count of s when every ingredient appears at least
// L times in it, and 0 otherwise. Single cells are never scored: they are not
// stored slices.
func (a *Agent) ScoreOf(s pizza.Slice) int {
	if s.Cells() < 2 {
		return 0
	}
	if a.ingredients.MinCount(s) < a.minEach {
		return 0
	}
	return s.Cells()
}

// Cursor returns the cursor position.
func (a *Agent) Cursor() core.Point { return a.cursor }

// SliceMode reports whether directions grow slices instead of moving.
func (a *Agent) SliceMode() bool { return a.sliceMode }

// Score returns the running score.
func (a *Agent) Score() int { return a.score }

// ValidSlices returns the scoring slices sorted by corner tuple.
func (a *Agent) ValidSlices() []pizza.Slice {
	out := make([]pizza.Slice, 0, len(a.valid))
	for s := range a.valid {
		out = append(out, s)
	}
	slices.SortFunc(out, pizza.Slice.Compare)
	return out
}

// Grid exposes the board.
func (a *Agent) Grid() *pizza.SliceGrid { return a.grid }

// Ingredients exposes the ingredient index.
func (a *Agent) Ingredients() *pizza.Ingredients { return a.ingredients }

// MinEach returns L, the per-ingredient minimum of a scoring slice.
func (a *Agent) MinEach() int { return a.minEach }

// MaxCells returns H, the largest slice allowed.
func (a *Agent) MaxCells() int { return a.maxCells }

// Stuck reports whether no growth can be attempted anywhere any more.
func (a *Agent) Stuck() bool { return !a.grid.CanGrowAnywhere() }
