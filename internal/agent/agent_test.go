package agent

import (
	"errors"
	"slices"
	"testing"

	"pizzacut/internal/pizza"
	pcore "pizzacut/pkg/core"
)

func exampleConfig() pizza.Config {
	return pizza.Config{Lines: []string{"TMTTM", "MMTTT", "TTTMT"}, L: 1, H: 6}
}

func newAgent(t *testing.T, cfg pizza.Config) *Agent {
	t.Helper()
	a, err := New(cfg, DefaultRewards())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func do(t *testing.T, a *Agent, token string) float64 {
	t.Helper()
	r, err := a.Do(token)
	if err != nil {
		t.Fatalf("Do(%q): %v", token, err)
	}
	return r
}

// recompute scores the board from scratch.
func recompute(a *Agent) int {
	total := 0
	for _, s := range a.Grid().Slices() {
		total += a.ScoreOf(s)
	}
	return total
}

func TestWorkedExample(t *testing.T) {
	a := newAgent(t, exampleConfig())
	if got := do(t, a, "toggle"); got != 0 {
		t.Fatalf("toggle reward = %v, want 0", got)
	}
	if got := do(t, a, "right"); got != 2 {
		t.Fatalf("first growth reward = %v, want 2", got)
	}
	if got := do(t, a, "right"); got != 1 {
		t.Fatalf("second growth reward = %v, want 1", got)
	}
	if a.Score() != 3 {
		t.Fatalf("score = %d, want 3", a.Score())
	}
	want := []pizza.Slice{{R0: 0, C0: 0, R1: 0, C1: 2}}
	if got := a.ValidSlices(); !slices.Equal(got, want) {
		t.Fatalf("valid slices = %v, want %v", got, want)
	}
	if got := do(t, a, "down"); got != 3 {
		t.Fatalf("growth to six cells reward = %v, want 3", got)
	}
	if got := do(t, a, "down"); got != DefaultRewards().Negative {
		t.Fatalf("growth past H reward = %v, want penalty", got)
	}
	if a.Score() != 6 {
		t.Fatalf("score = %d, want 6", a.Score())
	}
}

func TestMoveOutOfBoundsPenalty(t *testing.T) {
	a := newAgent(t, exampleConfig())
	if got := do(t, a, "up"); got != -0.1 {
		t.Fatalf("up from origin = %v, want -0.1", got)
	}
	if got := do(t, a, "left"); got != -0.1 {
		t.Fatalf("left from origin = %v, want -0.1", got)
	}
	if a.Cursor().R != 0 || a.Cursor().C != 0 {
		t.Fatalf("cursor moved to %v", a.Cursor())
	}
	if got := do(t, a, "down"); got != 0 {
		t.Fatalf("down = %v, want 0", got)
	}
	if a.Cursor().R != 1 {
		t.Fatalf("cursor = %v, want row 1", a.Cursor())
	}
}

func TestInvalidActionLeavesStateUnchanged(t *testing.T) {
	a := newAgent(t, exampleConfig())
	do(t, a, "right")
	before := a.Cursor()
	_, err := a.Do("jump")
	if !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("Do(jump) error = %v, want ErrInvalidAction", err)
	}
	if a.Cursor() != before || a.SliceMode() || a.Score() != 0 {
		t.Fatal("invalid action changed the agent")
	}
}

func TestInvalidSliceScoresNothing(t *testing.T) {
	a := newAgent(t, pizza.Config{Lines: []string{"TTM"}, L: 1, H: 3})
	do(t, a, "toggle")
	if got := do(t, a, "right"); got != 0 {
		t.Fatalf("TT with L=1 over {M,T} should be neutral, got %v", got)
	}
	if a.Score() != 0 || len(a.ValidSlices()) != 0 {
		t.Fatal("an invalid slice must not score")
	}
	if got := do(t, a, "right"); got != 3 {
		t.Fatalf("TTM reward = %v, want 3", got)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(pizza.Config{Lines: []string{"TM", "T"}, L: 1, H: 2}, DefaultRewards())
	var cerr *pizza.ConfigError
	if !errors.As(err, &cerr) || !errors.Is(err, pizza.ErrRaggedRows) {
		t.Fatalf("New error = %v, want ragged rows ConfigError", err)
	}
}

func TestRandomPlayKeepsScoreConsistent(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		rng := pcore.NewRNG(seed)
		cfg := pizza.Config{
			Lines: rng.Lines(rng.Between(1, 7), rng.Between(1, 7), "TM"),
			L:     rng.Between(1, 2),
			H:     rng.Between(1, 8),
		}
		a := newAgent(t, cfg)
		policy := NewRandomPolicy(seed)
		for i := 0; i < 500; i++ {
			before := a.Score()
			reward := do(t, a, string(policy.Next(a)))
			if reward > 0 && a.Score() <= before {
				t.Fatalf("seed %d: positive reward %v without score gain", seed, reward)
			}
			if got := recompute(a); got != a.Score() {
				t.Fatalf("seed %d step %d: score %d, recomputed %d", seed, i, a.Score(), got)
			}
		}
		valid := a.ValidSlices()
		for i, s := range valid {
			for _, o := range valid[i+1:] {
				if s.Overlaps(o) {
					t.Fatalf("seed %d: valid slices %v and %v overlap", seed, s, o)
				}
			}
		}
	}
}

func TestGreedyPolicyExhaustsBoard(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		rng := pcore.NewRNG(seed)
		rows, cols := rng.Between(1, 6), rng.Between(1, 6)
		cfg := pizza.Config{Lines: rng.Lines(rows, cols, "TMX"), L: 1, H: rng.Between(1, 10)}
		a := newAgent(t, cfg)
		policy := &GreedyPolicy{}
		limit := (rows*cols + 2) * (rows*cols + 2) * 32
		for i := 0; i < limit && !a.Stuck(); i++ {
			do(t, a, string(policy.Next(a)))
		}
		if !a.Stuck() {
			t.Fatalf("seed %d: board not exhausted after %d actions", seed, limit)
		}
		if recompute(a) != a.Score() {
			t.Fatalf("seed %d: score drifted", seed)
		}
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions {
		if got, err := ParseAction(string(a)); err != nil || got != a {
			t.Fatalf("ParseAction(%q) = %q, %v", a, got, err)
		}
	}
	if _, err := ParseAction("UP"); !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("ParseAction is case sensitive, got %v", err)
	}
}

func TestSingleCellNeverScores(t *testing.T) {
	a := newAgent(t, pizza.Config{Lines: []string{"TTTT"}, L: 1, H: 4})
	if got := a.ValidSlices(); len(got) != 0 {
		t.Fatalf("valid slices before growth = %v, want none", got)
	}
	if got := a.ScoreOf(pizza.CellSlice(0, 0)); got != 0 {
		t.Fatalf("ScoreOf(1x1) = %d, want 0", got)
	}
	do(t, a, "toggle")
	if got := do(t, a, "right"); got != 2 {
		t.Fatalf("first growth reward = %v, want the full size 2", got)
	}
	if a.Score() != 2 || recompute(a) != 2 {
		t.Fatalf("score = %d, recomputed %d, want 2", a.Score(), recompute(a))
	}
	if got := do(t, a, "right"); got != 1 {
		t.Fatalf("second growth reward = %v, want 1", got)
	}
	if a.Score() != recompute(a) {
		t.Fatalf("score = %d, recomputed %d", a.Score(), recompute(a))
	}
}

func TestAnchorInheritsRefusal(t *testing.T) {
	a := newAgent(t, pizza.Config{Lines: []string{"TTTT"}, L: 1, H: 4})
	do(t, a, "right")
	do(t, a, "toggle")
	if got := do(t, a, "right"); got != 2 {
		t.Fatalf("grow right from (0,1) = %v, want 2", got)
	}
	if got := do(t, a, "left"); got != 1 {
		t.Fatalf("grow left to (0,0) = %v, want 1", got)
	}
	// (0,0) lost right when the first slice settled next to it
	if got := do(t, a, "right"); got != DefaultRewards().Negative {
		t.Fatalf("grow right from new anchor = %v, want penalty", got)
	}
	if a.Score() != 3 {
		t.Fatalf("score = %d, want 3", a.Score())
	}
	if !a.Stuck() {
		t.Fatal("board should be stuck once the refusal spreads over the slice")
	}
}
