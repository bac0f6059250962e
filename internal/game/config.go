package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"pizzacut/internal/agent"
)

// EnvMaxSteps overrides Config.MaxSteps when set.
const EnvMaxSteps = "PIZZACUT_MAX_STEPS"

// Config controls a single game.
type Config struct {
	// MaxSteps ends the game after this many recognised actions.
	MaxSteps int `yaml:"max_steps" validate:"gte=1"`

	Rewards agent.Rewards `yaml:"rewards"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		MaxSteps: 100,
		Rewards:  agent.DefaultRewards(),
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparsable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["max_steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxSteps = parsed
		}
	}
	if v, ok := cfg["positive"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Rewards.Positive = parsed
		}
	}
	if v, ok := cfg["neutral"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Rewards.Neutral = parsed
		}
	}
	if v, ok := cfg["negative"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed <= 0 {
			c.Rewards.Negative = parsed
		}
	}
	return c
}

// LoadConfig reads path (when non-empty) over the defaults, applies the
// environment override and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read game config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse game config %s: %w", path, err)
		}
	}
	if v, ok := os.LookupEnv(EnvMaxSteps); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", EnvMaxSteps, v, err)
		}
		cfg.MaxSteps = n
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("game config: %s must satisfy %s=%s, got %v", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Errorf("game config: %w", err)
}
