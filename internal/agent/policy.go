package agent

import pcore "pizzacut/pkg/core"

// Policy chooses the next action for an automated player.
type Policy interface {
	Next(a *Agent) Action
}

// RandomPolicy picks uniformly among all actions.
type RandomPolicy struct {
	rng *pcore.RNG
}

// NewRandomPolicy returns a policy seeded for reproducible runs.
func NewRandomPolicy(seed int64) *RandomPolicy {
	return &RandomPolicy{rng: pcore.NewRNG(seed)}
}

// Next implements Policy.
func (p *RandomPolicy) Next(*Agent) Action { return pcore.Pick(p.rng, Actions) }

// GreedyPolicy visits the cells in row-major order and tries every growth
// direction there before moving on. It is deterministic and only stops
// producing useful actions once the board is stuck.
type GreedyPolicy struct {
	queue []Action
}

// Next implements Policy.
func (p *GreedyPolicy) Next(a *Agent) Action {
	if len(p.queue) == 0 {
		p.plan(a)
	}
	next := p.queue[0]
	p.queue = p.queue[1:]
	return next
}

func (p *GreedyPolicy) plan(a *Agent) {
	size := a.Grid().Size()
	cur := a.Cursor()
	if a.SliceMode() {
		p.queue = append(p.queue, ActionToggle)
	}
	// sweep to the next cell in row-major order, wrapping to (0,0)
	switch {
	case cur.C < size.Cols-1:
		p.queue = append(p.queue, ActionRight)
	case cur.R < size.Rows-1:
		p.queue = append(p.queue, ActionDown)
		for i := 0; i < size.Cols-1; i++ {
			p.queue = append(p.queue, ActionLeft)
		}
	default:
		for i := 0; i < size.Rows-1; i++ {
			p.queue = append(p.queue, ActionUp)
		}
		for i := 0; i < size.Cols-1; i++ {
			p.queue = append(p.queue, ActionLeft)
		}
	}
	p.queue = append(p.queue, ActionToggle, ActionRight, ActionDown, ActionLeft, ActionUp)
}
