// Command slice-sweep plays many random pizzas with an automated policy and
// reports which L/H combinations pack best.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"slices"
	"time"
)

func main() {
	rows := flag.Int("rows", 12, "rows of every generated pizza")
	cols := flag.Int("cols", 12, "columns of every generated pizza")
	seeds := flag.Int("seeds", 8, "pizzas generated per L/H combination")
	policy := flag.String("policy", "greedy", "policy playing every game: greedy or random")
	maxSteps := flag.Int("max-steps", 20000, "steps before a game is cut off")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "results to print")
	flag.Parse()

	var scenarios []scenario
	for _, h := range []int{4, 6, 8, 12, 14} {
		for _, l := range []int{1, 2, 3} {
			if 2*l > h {
				continue
			}
			for seed := 1; seed <= *seeds; seed++ {
				scenarios = append(scenarios, scenario{
					rows: *rows, cols: *cols, l: l, h: h,
					seed: int64(seed), policy: *policy, maxSteps: *maxSteps,
				})
			}
		}
	}

	fmt.Printf("Sweeping %d games (%d workers, %s policy, %dx%d)\n", len(scenarios), *workers, *policy, *rows, *cols)

	start := time.Now()
	all, err := sweep(context.Background(), scenarios, *workers)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	totals := summarize(all)
	slices.SortFunc(totals, func(a, b summary) int {
		switch {
		case a.coverage > b.coverage:
			return -1
		case a.coverage < b.coverage:
			return 1
		}
		return 0
	})

	fmt.Printf("\nTop %d L/H combinations (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(totals) && i < *top; i++ {
		s := totals[i]
		fmt.Printf("%2d) L=%d H=%d coverage=%.1f%% score=%.1f steps=%.0f stuck=%d/%d\n",
			i+1, s.l, s.h, 100*s.coverage, s.score, s.steps, s.stuck, s.games)
	}

	best := all[0]
	for _, res := range all[1:] {
		if res.coverage() > best.coverage() {
			best = res
		}
	}
	fmt.Printf("\nBest game: %s score=%d coverage=%.1f%% steps=%d\n",
		best.scenario, best.score, 100*best.coverage(), best.steps)
}
