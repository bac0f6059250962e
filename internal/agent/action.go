package agent

import (
	"errors"
	"fmt"
)

// ErrInvalidAction is returned for any action token outside Actions.
var ErrInvalidAction = errors.New("agent: invalid action")

// Action is one command accepted by the agent.
type Action string

const (
	ActionUp     Action = "up"
	ActionDown   Action = "down"
	ActionLeft   Action = "left"
	ActionRight  Action = "right"
	ActionToggle Action = "toggle"
)

// Actions lists every valid action.
var Actions = []Action{ActionUp, ActionDown, ActionLeft, ActionRight, ActionToggle}

// ParseAction validates a raw token.
func ParseAction(token string) (Action, error) {
	for _, a := range Actions {
		if string(a) == token {
			return a, nil
		}
	}
	return "", fmt.Errorf("%q: %w", token, ErrInvalidAction)
}

// Rewards are the values returned by Do for each kind of outcome.
type Rewards struct {
	Positive float64 `yaml:"positive"`
	Neutral  float64 `yaml:"neutral"`
	Negative float64 `yaml:"negative" validate:"lte=0"`
}

// DefaultRewards returns the standard reward table.
func DefaultRewards() Rewards {
	return Rewards{Positive: 1.0, Neutral: 0.0, Negative: -0.1}
}
