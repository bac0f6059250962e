package pizza

import (
	"slices"

	"pizzacut/internal/core"
)

// Unassigned marks a cell that no stored slice owns.
const Unassigned = -1

// SliceGrid owns the partition of the grid into slices: which slice owns each
// cell, which directions each cell may still grow in, and the table of stored
// slices keyed by anchor offset.
//
// Cells that no stored slice owns behave as implicit 1x1 slices.
type SliceGrid struct {
	ingredients *Ingredients
	rows, cols  int
	bounds      Slice

	owners *core.Grid[int]
	slices map[int]Slice

	// perms holds four flags per cell, indexed (r*cols+c)*4+d. Flags only
	// ever go from true to false; open counts the ones still true.
	perms []bool
	open  int
}

// NewSliceGrid creates an empty partition over the ingredient grid. Every
// cell may initially grow in every direction that stays on the board.
func NewSliceGrid(in *Ingredients) *SliceGrid {
	size := in.Size()
	g := &SliceGrid{
		ingredients: in,
		rows:        size.Rows,
		cols:        size.Cols,
		bounds:      in.Bounds(),
		owners:      core.NewGrid(size.Rows, size.Cols, Unassigned),
		slices:      map[int]Slice{},
		perms:       make([]bool, size.Cells()*len(Directions)),
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			base := (r*g.cols + c) * len(Directions)
			g.perms[base+int(Right)] = c < g.cols-1
			g.perms[base+int(Down)] = r < g.rows-1
			g.perms[base+int(Left)] = c > 0
			g.perms[base+int(Up)] = r > 0
		}
	}
	for _, p := range g.perms {
		if p {
			g.open++
		}
	}
	return g
}

// Ingredients returns the index the grid was built over.
func (g *SliceGrid) Ingredients() *Ingredients { return g.ingredients }

// Size returns the grid dimensions.
func (g *SliceGrid) Size() core.Size { return core.Size{Rows: g.rows, Cols: g.cols} }

// ID returns the anchor-derived id of s.
func (g *SliceGrid) ID(s Slice) int { return s.R0*g.cols + s.C0 }

// Owner returns the id of the slice owning (r, c), or Unassigned.
func (g *SliceGrid) Owner(r, c int) int { return g.owners.At(r, c) }

// SliceAt returns the slice owning (r, c), or the implicit 1x1 slice there.
func (g *SliceGrid) SliceAt(r, c int) Slice {
	id := g.owners.At(r, c)
	if id == Unassigned {
		return CellSlice(r, c)
	}
	return g.slices[id]
}

// Lookup returns the stored slice with the given id.
func (g *SliceGrid) Lookup(id int) (Slice, bool) {
	s, ok := g.slices[id]
	return s, ok
}

// Len returns the number of stored slices.
func (g *SliceGrid) Len() int { return len(g.slices) }

// Slices returns the stored slices sorted by corner tuple.
func (g *SliceGrid) Slices() []Slice {
	out := make([]Slice, 0, len(g.slices))
	for _, s := range g.slices {
		out = append(out, s)
	}
	slices.SortFunc(out, Slice.Compare)
	return out
}

// OwnersMap returns a copy of the ownership grid.
func (g *SliceGrid) OwnersMap() [][]int {
	return core.Rows2D(g.owners, func(v int) int { return v })
}

// CanGrow reports whether (r, c) may still attempt growth in d.
func (g *SliceGrid) CanGrow(r, c int, d Direction) bool {
	return g.perms[g.permIndex(r, c, d)]
}

// CanGrowAnywhere reports whether any cell may still attempt growth in any
// direction.
func (g *SliceGrid) CanGrowAnywhere() bool { return g.open > 0 }

// TryGrow attempts to grow current by one row or column in direction d
// without exceeding maxCells. current must be the slice the grid reports at
// its anchor. On success the grown slice is returned and committed; on
// refusal the board is unchanged apart from permission flags.
func (g *SliceGrid) TryGrow(current Slice, d Direction, maxCells int) (Slice, bool) {
	if !current.Within(g.bounds) || g.SliceAt(current.R0, current.C0) != current {
		return Slice{}, false
	}
	if !g.CanGrow(current.R0, current.C0, d) {
		// the anchor may have inherited the refusal from an earlier, smaller
		// slice; spread it so no other cell of current still reports d open
		g.disable(current, d)
		return Slice{}, false
	}

	candidate := current.Expand(d)
	if !candidate.Within(g.bounds) {
		g.disable(current, d)
		return Slice{}, false
	}
	if candidate.Cells() > maxCells {
		g.disable(current, d)
		return Slice{}, false
	}
	side := current.Side(d)
	if owners := g.ownersIn(side); len(owners) > 0 {
		g.disable(current, d)
		for _, id := range owners {
			g.disable(g.slices[id], d.Opposite())
		}
		g.disable(side, d.Opposite())
		return Slice{}, false
	}

	id := g.ID(candidate)
	g.owners.FillRect(candidate.R0, candidate.C0, candidate.R1, candidate.C1, id)
	if current.Cells() > 1 {
		delete(g.slices, g.ID(current))
	}
	g.slices[id] = candidate

	for _, dir := range Directions {
		g.settle(candidate, dir, maxCells)
	}
	return candidate, true
}

// settle disables every growth that became impossible next to s on side d.
func (g *SliceGrid) settle(s Slice, d Direction, maxCells int) {
	side := s.Side(d)
	if !side.Within(g.bounds) {
		g.disable(s, d)
		return
	}
	if s.Cells()+side.Cells() > maxCells {
		g.disable(s, d)
	}
	owners := g.ownersIn(side)
	for _, id := range owners {
		g.disable(g.slices[id], d.Opposite())
	}
	g.disable(side, d.Opposite())
	if len(owners) > 0 {
		g.disable(s, d)
	}
}

// disable clears direction d for every cell of s.
func (g *SliceGrid) disable(s Slice, d Direction) {
	for r := s.R0; r <= s.R1; r++ {
		for c := s.C0; c <= s.C1; c++ {
			i := g.permIndex(r, c, d)
			if g.perms[i] {
				g.perms[i] = false
				g.open--
			}
		}
	}
}

// ownersIn returns the distinct slice ids owning cells of s.
func (g *SliceGrid) ownersIn(s Slice) []int {
	var ids []int
	for r := s.R0; r <= s.R1; r++ {
		for c := s.C0; c <= s.C1; c++ {
			id := g.owners.At(r, c)
			if id == Unassigned || slices.Contains(ids, id) {
				continue
			}
			ids = append(ids, id)
		}
	}
	return ids
}

func (g *SliceGrid) permIndex(r, c int, d Direction) int {
	return (r*g.cols+c)*len(Directions) + int(d)
}
