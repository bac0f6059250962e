package main

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"pizzacut/internal/agent"
	"pizzacut/internal/game"
	"pizzacut/internal/pizza"
	pcore "pizzacut/pkg/core"
)

const alphabet = "MT"

type scenario struct {
	rows, cols int
	l, h       int
	seed       int64
	policy     string
	maxSteps   int
}

func (s scenario) String() string {
	return fmt.Sprintf("%dx%d L=%d H=%d seed=%d policy=%s", s.rows, s.cols, s.l, s.h, s.seed, s.policy)
}

type result struct {
	scenario
	score int
	steps int
	stuck bool
}

func (r result) coverage() float64 {
	return float64(r.score) / float64(r.rows*r.cols)
}

// runScenario plays one generated pizza to the end.
func runScenario(ctx context.Context, sc scenario) (result, error) {
	rng := pcore.NewRNG(sc.seed)
	puzzle := pizza.Config{Lines: rng.Lines(sc.rows, sc.cols, alphabet), L: sc.l, H: sc.h}

	cfg := game.DefaultConfig()
	cfg.MaxSteps = sc.maxSteps
	g, err := game.New(cfg, puzzle, game.WithID(sc.String()))
	if err != nil {
		return result{}, fmt.Errorf("%s: %w", sc, err)
	}

	var policy agent.Policy
	switch sc.policy {
	case "greedy":
		policy = &agent.GreedyPolicy{}
	case "random":
		policy = agent.NewRandomPolicy(sc.seed)
	default:
		return result{}, fmt.Errorf("unknown policy %q", sc.policy)
	}

	for !g.Done() {
		if g.Env().Information.Step%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return result{}, err
			}
		}
		if _, err := g.Step(string(policy.Next(g.Agent()))); err != nil {
			return result{}, fmt.Errorf("%s: %w", sc, err)
		}
	}
	env := g.Env()
	return result{
		scenario: sc,
		score:    env.Information.Score,
		steps:    env.Information.Step,
		stuck:    g.Agent().Stuck(),
	}, nil
}

// sweep runs every scenario on a pool of workers. Results keep the order of
// scenarios. The first failing game cancels the rest.
func sweep(ctx context.Context, scenarios []scenario, workers int) ([]result, error) {
	workers = max(workers, 1)
	g, gctx := errgroup.WithContext(ctx)

	jobs := make(chan int)
	g.Go(func() error {
		defer close(jobs)
		for i := range scenarios {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	results := make([]result, len(scenarios))
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				res, err := runScenario(gctx, scenarios[i])
				if err != nil {
					return err
				}
				results[i] = res
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type summary struct {
	l, h     int
	games    int
	stuck    int
	score    float64
	steps    float64
	coverage float64
}

// summarize averages results per L/H pair, in first-seen order.
func summarize(all []result) []summary {
	index := map[[2]int]int{}
	var out []summary
	for _, r := range all {
		key := [2]int{r.l, r.h}
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, summary{l: r.l, h: r.h})
		}
		s := &out[i]
		s.games++
		if r.stuck {
			s.stuck++
		}
		s.score += float64(r.score)
		s.steps += float64(r.steps)
		s.coverage += r.coverage()
	}
	for i := range out {
		n := float64(out[i].games)
		out[i].score /= n
		out[i].steps /= n
		out[i].coverage /= n
	}
	return out
}
