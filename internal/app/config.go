package app

import (
	"flag"
	"time"
)

// Config represents the command-line parameters of the viewer.
type Config struct {
	Dir      string
	Scale    int
	TPS      int
	Rate     int
	HUDWidth int
	Refresh  time.Duration
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 24, TPS: 60, Rate: 4, HUDWidth: 320, Refresh: 200 * time.Millisecond}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Dir, "name", c.Dir, "game directory to follow")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per grid cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "snapshots replayed per second")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "width of the information panel, 0 hides it")
	fs.DurationVar(&c.Refresh, "refresh-delay", c.Refresh, "polling interval for new snapshots")
}
