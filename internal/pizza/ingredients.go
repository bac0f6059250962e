package pizza

import (
	"slices"
	"unicode/utf8"

	"pizzacut/internal/core"
)

// Ingredients holds the typed grid and a per-type summed-area table over it.
// It is built once and read-only afterwards.
type Ingredients struct {
	rows, cols int
	unique     []rune
	cells      *core.Grid[uint8]

	// prefix has a zero row and column of padding: entry (r+1, c+1, t) counts
	// cells of type t in (0,0)-(r,c).
	prefix []int32
	stride int
}

// NewIngredients builds the index. Type ids follow the sorted order of the
// distinct characters found in lines.
func NewIngredients(lines []string) (*Ingredients, error) {
	if len(lines) == 0 {
		return nil, configErr("Lines", ErrEmptyGrid, "no rows")
	}
	cols := utf8.RuneCountInString(lines[0])
	if cols == 0 {
		return nil, configErr("Lines[0]", ErrEmptyGrid, "row is empty")
	}

	seen := map[rune]struct{}{}
	grid := make([][]rune, len(lines))
	for i, line := range lines {
		row := []rune(line)
		if len(row) != cols {
			return nil, configErr("Lines", ErrRaggedRows, "row %d has %d cells, row 0 has %d", i, len(row), cols)
		}
		for _, ch := range row {
			seen[ch] = struct{}{}
		}
		grid[i] = row
	}
	if len(seen) > MaxIngredients {
		return nil, configErr("Lines", ErrTooManyIngredients, "%d distinct cell types", len(seen))
	}

	unique := make([]rune, 0, len(seen))
	for ch := range seen {
		unique = append(unique, ch)
	}
	slices.Sort(unique)
	ids := make(map[rune]uint8, len(unique))
	for i, ch := range unique {
		ids[ch] = uint8(i)
	}

	in := &Ingredients{
		rows:   len(lines),
		cols:   cols,
		unique: unique,
		cells:  core.NewGrid[uint8](len(lines), cols, 0),
	}
	for r, row := range grid {
		for c, ch := range row {
			in.cells.Set(r, c, ids[ch])
		}
	}
	in.build()
	return in, nil
}

func (in *Ingredients) build() {
	types := len(in.unique)
	in.stride = in.cols + 1
	in.prefix = make([]int32, (in.rows+1)*in.stride*types)
	for r := 0; r < in.rows; r++ {
		for c := 0; c < in.cols; c++ {
			cur := in.offset(r+1, c+1)
			up := in.offset(r, c+1)
			left := in.offset(r+1, c)
			diag := in.offset(r, c)
			for t := 0; t < types; t++ {
				in.prefix[cur+t] = in.prefix[up+t] + in.prefix[left+t] - in.prefix[diag+t]
			}
			in.prefix[cur+int(in.cells.At(r, c))]++
		}
	}
}

func (in *Ingredients) offset(pr, pc int) int {
	return (pr*in.stride + pc) * len(in.unique)
}

// Size returns the grid dimensions.
func (in *Ingredients) Size() core.Size { return core.Size{Rows: in.rows, Cols: in.cols} }

// Bounds returns the slice covering the whole grid.
func (in *Ingredients) Bounds() Slice { return Slice{R0: 0, C0: 0, R1: in.rows - 1, C1: in.cols - 1} }

// Types returns the number of distinct ingredients.
func (in *Ingredients) Types() int { return len(in.unique) }

// Unique returns the ingredient characters indexed by type id.
func (in *Ingredients) Unique() []string {
	out := make([]string, len(in.unique))
	for i, ch := range in.unique {
		out[i] = string(ch)
	}
	return out
}

// TypeAt returns the type id of cell (r, c).
func (in *Ingredients) TypeAt(r, c int) int { return int(in.cells.At(r, c)) }

// Map returns the grid of type ids.
func (in *Ingredients) Map() [][]int {
	return core.Rows2D(in.cells, func(v uint8) int { return int(v) })
}

// CountsIn returns how many cells of each type lie inside s. s must lie
// inside the grid.
func (in *Ingredients) CountsIn(s Slice) []int {
	counts := make([]int, len(in.unique))
	for t := range counts {
		counts[t] = in.count(s, t)
	}
	return counts
}

// MinCount returns the smallest per-type count inside s without allocating.
func (in *Ingredients) MinCount(s Slice) int {
	least := s.Cells()
	for t := range in.unique {
		if n := in.count(s, t); n < least {
			least = n
		}
	}
	return least
}

func (in *Ingredients) count(s Slice, t int) int {
	total := in.prefix[in.offset(s.R1+1, s.C1+1)+t] -
		in.prefix[in.offset(s.R0, s.C1+1)+t] -
		in.prefix[in.offset(s.R1+1, s.C0)+t] +
		in.prefix[in.offset(s.R0, s.C0)+t]
	return int(total)
}
