package core

// Grid stores a 2D grid of cell values in row-major order.
type Grid[T any] struct {
	Rows, Cols int
	data       []T
}

// NewGrid allocates a grid with the given dimensions, every cell set to fill.
func NewGrid[T any](rows, cols int, fill T) *Grid[T] {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	g := &Grid[T]{Rows: rows, Cols: cols, data: make([]T, rows*cols)}
	g.Fill(fill)
	return g
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Size { return Size{Rows: g.Rows, Cols: g.Cols} }

// Index returns the linear slice index for coordinates (r, c).
func (g *Grid[T]) Index(r, c int) int { return r*g.Cols + c }

// InBounds reports whether (r, c) addresses a cell of the grid.
func (g *Grid[T]) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// At returns the value stored at (r, c).
func (g *Grid[T]) At(r, c int) T { return g.data[r*g.Cols+c] }

// Set stores v at (r, c).
func (g *Grid[T]) Set(r, c int, v T) { g.data[r*g.Cols+c] = v }

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// FillRect sets every cell of the inclusive rectangle (r0,c0)-(r1,c1) to v.
func (g *Grid[T]) FillRect(r0, c0, r1, c1 int, v T) {
	for r := r0; r <= r1; r++ {
		row := g.data[r*g.Cols : (r+1)*g.Cols]
		for c := c0; c <= c1; c++ {
			row[c] = v
		}
	}
}

// Rows2D copies the grid into nested row slices converted with conv.
func Rows2D[T any, U any](g *Grid[T], conv func(T) U) [][]U {
	out := make([][]U, g.Rows)
	for r := 0; r < g.Rows; r++ {
		row := make([]U, g.Cols)
		for c := 0; c < g.Cols; c++ {
			row[c] = conv(g.data[r*g.Cols+c])
		}
		out[r] = row
	}
	return out
}
