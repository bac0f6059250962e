package pizza

import "fmt"

// Direction selects one side of a slice.
type Direction uint8

const (
	Right Direction = iota
	Down
	Left
	Up
)

// Directions lists every direction in mask order.
var Directions = [...]Direction{Right, Down, Left, Up}

var opposite = [...]Direction{Right: Left, Down: Up, Left: Right, Up: Down}

var directionNames = [...]string{Right: "right", Down: "down", Left: "left", Up: "up"}

// Opposite returns the direction facing back across the same edge.
func (d Direction) Opposite() Direction { return opposite[d] }

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Delta returns the row and column step for d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return -1, 0
	}
}

// ParseDirection maps "right", "down", "left" and "up" to a Direction.
func ParseDirection(name string) (Direction, bool) {
	for d, n := range directionNames {
		if n == name {
			return Direction(d), true
		}
	}
	return 0, false
}

// Slice is an axis-aligned rectangle with inclusive corners (R0,C0)-(R1,C1).
type Slice struct {
	R0, C0, R1, C1 int
}

// CellSlice returns the 1x1 slice at (r, c).
func CellSlice(r, c int) Slice { return Slice{R0: r, C0: c, R1: r, C1: c} }

// Cells returns the number of cells covered by s.
func (s Slice) Cells() int { return (s.R1 - s.R0 + 1) * (s.C1 - s.C0 + 1) }

// Expand returns s grown by one row or column on side d. Bounds are not
// checked.
func (s Slice) Expand(d Direction) Slice {
	switch d {
	case Right:
		s.C1++
	case Down:
		s.R1++
	case Left:
		s.C0--
	case Up:
		s.R0--
	}
	return s
}

// Side returns the one-cell-thick strip just outside s on side d.
func (s Slice) Side(d Direction) Slice {
	switch d {
	case Right:
		return Slice{R0: s.R0, C0: s.C1 + 1, R1: s.R1, C1: s.C1 + 1}
	case Down:
		return Slice{R0: s.R1 + 1, C0: s.C0, R1: s.R1 + 1, C1: s.C1}
	case Left:
		return Slice{R0: s.R0, C0: s.C0 - 1, R1: s.R1, C1: s.C0 - 1}
	default:
		return Slice{R0: s.R0 - 1, C0: s.C0, R1: s.R0 - 1, C1: s.C1}
	}
}

// Within reports whether s lies entirely inside outer.
func (s Slice) Within(outer Slice) bool {
	return s.R0 >= outer.R0 && s.C0 >= outer.C0 && s.R1 <= outer.R1 && s.C1 <= outer.C1
}

// Contains reports whether inner lies entirely inside s.
func (s Slice) Contains(inner Slice) bool { return inner.Within(s) }

// Overlaps reports whether s and o share at least one cell.
func (s Slice) Overlaps(o Slice) bool {
	return s.R0 <= o.R1 && o.R0 <= s.R1 && s.C0 <= o.C1 && o.C0 <= s.C1
}

// Tuple returns the corners as (r0, c0, r1, c1).
func (s Slice) Tuple() [4]int { return [4]int{s.R0, s.C0, s.R1, s.C1} }

// Compare orders slices by their corner tuple.
func (s Slice) Compare(o Slice) int {
	a, b := s.Tuple(), o.Tuple()
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

func (s Slice) String() string {
	return fmt.Sprintf("%d %d %d %d", s.R0, s.C0, s.R1, s.C1)
}
