package core

// Size describes the dimensions of a puzzle grid.
type Size struct {
	Rows int
	Cols int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.Rows * s.Cols }

// Contains reports whether p lies inside a grid of this size.
func (s Size) Contains(p Point) bool {
	return p.R >= 0 && p.R < s.Rows && p.C >= 0 && p.C < s.Cols
}

// Point addresses a single cell by row and column.
type Point struct {
	R int
	C int
}

// Add returns p shifted by (dr, dc).
func (p Point) Add(dr, dc int) Point { return Point{R: p.R + dr, C: p.C + dc} }

// Viewable is the minimal contract the renderers and the HUD need from a
// game snapshot.
type Viewable interface {
	Size() Size
	Parameters() ParameterSnapshot
}
