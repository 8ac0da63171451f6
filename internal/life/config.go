package life

import (
	"errors"
	"fmt"
	"strconv"

	"lifeline/internal/core"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("life: invalid config")

// Config holds the engine's construction parameters.
type Config struct {
	GridSize          int
	TargetRefreshRate int
	EvolutionRate     int
	Paused            bool

	LivePercent int
	Seed        int64
	Rule        string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		GridSize:          96,
		TargetRefreshRate: 60,
		EvolutionRate:     25,
		LivePercent:       50,
		Rule:              Conway.String(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.GridSize = parsed
		}
	}
	if v, ok := cfg["fps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TargetRefreshRate = parsed
		}
	}
	if v, ok := cfg["rate"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= core.MaxRate {
			c.EvolutionRate = parsed
		}
	}
	if v, ok := cfg["paused"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Paused = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 100 {
			c.LivePercent = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if _, err := ParseRule(v); err == nil {
			c.Rule = v
		}
	}
	return c
}

// Validate rejects configurations the engine cannot run.
func (c Config) Validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("%w: grid size %d must be positive", ErrInvalidConfig, c.GridSize)
	}
	if c.TargetRefreshRate <= 0 {
		return fmt.Errorf("%w: target refresh rate %d must be positive", ErrInvalidConfig, c.TargetRefreshRate)
	}
	if c.EvolutionRate < 0 || c.EvolutionRate > core.MaxRate {
		return fmt.Errorf("%w: evolution rate %d outside 0..%d", ErrInvalidConfig, c.EvolutionRate, core.MaxRate)
	}
	if c.LivePercent < 0 || c.LivePercent > 100 {
		return fmt.Errorf("%w: live percent %d outside 0..100", ErrInvalidConfig, c.LivePercent)
	}
	if c.Rule != "" {
		if _, err := ParseRule(c.Rule); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

func (c Config) rule() Rule {
	if c.Rule == "" {
		return Conway
	}
	r, err := ParseRule(c.Rule)
	if err != nil {
		return Conway
	}
	return r
}
