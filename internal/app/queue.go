package app

import "pizzacut/internal/game"

// replay buffers snapshots received from a follower and hands them out one
// per tick.
type replay struct {
	current game.Env
	pending []game.Env
	ended   bool
}

func newReplay(first game.Env) *replay { return &replay{current: first} }

// drain moves everything available on envs into the buffer without blocking.
// A closed channel marks the end of the game.
func (r *replay) drain(envs <-chan game.Env) {
	for !r.ended {
		select {
		case env, ok := <-envs:
			if !ok {
				r.ended = true
				return
			}
			r.pending = append(r.pending, env)
		default:
			return
		}
	}
}

// advance shows the next buffered snapshot. It reports false when nothing
// was waiting.
func (r *replay) advance() bool {
	if len(r.pending) == 0 {
		return false
	}
	r.current = r.pending[0]
	r.pending = r.pending[1:]
	return true
}

// finished reports whether the last snapshot is on screen.
func (r *replay) finished() bool { return r.ended && len(r.pending) == 0 }
