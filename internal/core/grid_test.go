package core

import (
	"slices"
	"testing"
)

func TestGridFillRect(t *testing.T) {
	g := NewGrid(3, 4, -1)
	g.FillRect(1, 1, 2, 2, 7)

	want := [][]int{
		{-1, -1, -1, -1},
		{-1, 7, 7, -1},
		{-1, 7, 7, -1},
	}
	got := Rows2D(g, func(v int) int { return v })
	for r := range want {
		if !slices.Equal(want[r], got[r]) {
			t.Fatalf("row %d = %v, expected %v", r, got[r], want[r])
		}
	}
}

func TestGridBoundsAndIndex(t *testing.T) {
	g := NewGrid[uint8](2, 3, 0)
	if g.Index(1, 2) != 5 {
		t.Fatalf("Index(1,2) = %d, expected 5", g.Index(1, 2))
	}
	if !g.InBounds(1, 2) || g.InBounds(2, 0) || g.InBounds(0, -1) {
		t.Fatal("InBounds disagrees with the grid dimensions")
	}
	g.Set(1, 2, 9)
	if g.At(1, 2) != 9 || g.Cells()[5] != 9 {
		t.Fatal("Set did not write through to the backing slice")
	}
	if g.Size() != (Size{Rows: 2, Cols: 3}) {
		t.Fatalf("unexpected size %+v", g.Size())
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3, false)
	if g.Rows != 1 || g.Cols != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected a 1x1 grid, got %dx%d", g.Rows, g.Cols)
	}
}

func TestSizeContains(t *testing.T) {
	s := Size{Rows: 3, Cols: 5}
	if !s.Contains(Point{R: 2, C: 4}) {
		t.Fatal("expected bottom-right cell to be inside")
	}
	if s.Contains(Point{R: 0, C: 0}.Add(-1, 0)) {
		t.Fatal("row -1 must be outside")
	}
	if s.Cells() != 15 {
		t.Fatalf("Cells() = %d, expected 15", s.Cells())
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{IntParam("rows", "Rows", 3)}},
		{Name: "B", Params: []Parameter{BoolParam("slice_mode", "Slice mode", true), FloatParam("reward", "Last reward", -0.1)}},
	}}
	p, ok := snap.Lookup("slice_mode")
	if !ok || p.Value != "on" {
		t.Fatalf("slice_mode lookup = %+v, %v", p, ok)
	}
	if p, _ := snap.Lookup("reward"); p.Value != "-0.1" {
		t.Fatalf("reward formatted as %q", p.Value)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("unexpected hit for missing key")
	}
	if snap.LabelWidth() != len("Last reward") {
		t.Fatalf("LabelWidth() = %d", snap.LabelWidth())
	}
}
