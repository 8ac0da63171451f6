package app

import (
	"flag"
	"time"

	"lifeline/internal/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	UI       string
	Scale    int
	Duration time.Duration
	Report   time.Duration

	Life life.Config
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{UI: "term", Scale: 8, Report: time.Second, Life: life.DefaultConfig()}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.UI, "ui", c.UI, "viewer: gui, term or headless")
	fs.IntVar(&c.Scale, "scale", c.Scale, "gui pixels per cell")
	fs.DurationVar(&c.Duration, "duration", c.Duration, "headless run time (0 runs until interrupted)")
	fs.DurationVar(&c.Report, "report", c.Report, "headless report interval")

	fs.IntVar(&c.Life.GridSize, "size", c.Life.GridSize, "grid edge length in cells")
	fs.IntVar(&c.Life.TargetRefreshRate, "fps", c.Life.TargetRefreshRate, "engine loop iterations per second")
	fs.IntVar(&c.Life.EvolutionRate, "rate", c.Life.EvolutionRate, "evolutions per 100 time-units (rate/10 per second)")
	fs.BoolVar(&c.Life.Paused, "paused", c.Life.Paused, "start paused")
	fs.IntVar(&c.Life.LivePercent, "density", c.Life.LivePercent, "percentage of cells seeded alive")
	fs.Int64Var(&c.Life.Seed, "seed", c.Life.Seed, "seed for the initial grid (0 picks one)")
	fs.StringVar(&c.Life.Rule, "rule", c.Life.Rule, "Life-like rule in B/S notation")
}
