package pizza

import "testing"

func TestExpandAndSide(t *testing.T) {
	s := Slice{R0: 1, C0: 1, R1: 2, C1: 3}
	cases := []struct {
		d      Direction
		expand Slice
		side   Slice
	}{
		{Right, Slice{1, 1, 2, 4}, Slice{1, 4, 2, 4}},
		{Down, Slice{1, 1, 3, 3}, Slice{3, 1, 3, 3}},
		{Left, Slice{1, 0, 2, 3}, Slice{1, 0, 2, 0}},
		{Up, Slice{0, 1, 2, 3}, Slice{0, 1, 0, 3}},
	}
	for _, tc := range cases {
		if got := s.Expand(tc.d); got != tc.expand {
			t.Fatalf("Expand(%v) = %v, expected %v", tc.d, got, tc.expand)
		}
		if got := s.Side(tc.d); got != tc.side {
			t.Fatalf("Side(%v) = %v, expected %v", tc.d, got, tc.side)
		}
		if s.Expand(tc.d).Cells() != s.Cells()+s.Side(tc.d).Cells() {
			t.Fatalf("expanding %v must add exactly the side strip", tc.d)
		}
	}
	if s != (Slice{1, 1, 2, 3}) {
		t.Fatal("Expand must not mutate the receiver")
	}
}

func TestOppositeTable(t *testing.T) {
	pairs := map[Direction]Direction{Right: Left, Down: Up, Left: Right, Up: Down}
	for d, want := range pairs {
		if d.Opposite() != want {
			t.Fatalf("%v.Opposite() = %v, expected %v", d, d.Opposite(), want)
		}
	}
	for _, d := range Directions {
		parsed, ok := ParseDirection(d.String())
		if !ok || parsed != d {
			t.Fatalf("ParseDirection(%q) = %v, %v", d.String(), parsed, ok)
		}
	}
	if _, ok := ParseDirection("toggle"); ok {
		t.Fatal("toggle is not a direction")
	}
}

func TestContainmentAndOverlap(t *testing.T) {
	outer := Slice{0, 0, 2, 4}
	inner := Slice{1, 1, 2, 2}
	if !outer.Contains(inner) || !inner.Within(outer) {
		t.Fatal("inner should be inside outer")
	}
	if inner.Contains(outer) {
		t.Fatal("outer is not inside inner")
	}
	if !outer.Overlaps(inner) {
		t.Fatal("nested slices overlap")
	}
	if (Slice{0, 0, 0, 1}).Overlaps(Slice{0, 2, 0, 3}) {
		t.Fatal("adjacent slices do not overlap")
	}
	if (Slice{0, 0, 0, 1}).Compare(Slice{0, 0, 1, 0}) >= 0 {
		t.Fatal("Compare must order by tuple")
	}
	if CellSlice(2, 3).Cells() != 1 || CellSlice(2, 3).String() != "2 3 2 3" {
		t.Fatal("unexpected 1x1 slice")
	}
}
