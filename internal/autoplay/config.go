package autoplay

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Strategy selects which circle the bot taps.
type Strategy string

const (
	// StrategyNewest taps the most recently created circle.
	StrategyNewest Strategy = "newest"
	// StrategySmallest taps the smallest circle, newest first on ties.
	StrategySmallest Strategy = "smallest"
	// StrategyRandom taps a uniformly chosen circle.
	StrategyRandom Strategy = "random"
	// StrategyIdle never taps.
	StrategyIdle Strategy = "idle"
)

// Valid reports whether s names a known strategy.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyNewest, StrategySmallest, StrategyRandom, StrategyIdle:
		return true
	}
	return false
}

// Config controls a headless autoplay run.
type Config struct {
	Width    float64  `yaml:"width"`
	Height   float64  `yaml:"height"`
	Ticks    int      `yaml:"ticks"`
	TapEvery int      `yaml:"tap_every"`
	Strategy Strategy `yaml:"strategy"`
	Restart  bool     `yaml:"restart"`
}

// DefaultConfig returns the standard configuration: one minute of play at 60
// ticks per second, tapping every half second.
func DefaultConfig() Config {
	return Config{
		Width:    800,
		Height:   600,
		Ticks:    3600,
		TapEvery: 30,
		Strategy: StrategySmallest,
		Restart:  true,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().With(cfg)
}

// With returns a copy of c with the key/value pairs in cfg applied.
func (c Config) With(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["ticks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Ticks = parsed
		}
	}
	if v, ok := cfg["tap_every"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TapEvery = parsed
		}
	}
	if v, ok := cfg["strategy"]; ok {
		if s := Strategy(v); s.Valid() {
			c.Strategy = s
		}
	}
	if v, ok := cfg["restart"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Restart = parsed
		}
	}
	return c
}

// LoadFile reads a YAML config, starting from the defaults.
func LoadFile(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read autoplay config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse autoplay config %s: %w", path, err)
	}
	return c, c.Validate()
}

// Validate reports configuration values Run cannot work with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("playfield %gx%g must be positive", c.Width, c.Height)
	}
	if c.Ticks < 0 {
		return fmt.Errorf("ticks %d must not be negative", c.Ticks)
	}
	if c.TapEvery <= 0 {
		return fmt.Errorf("tap_every %d must be positive", c.TapEvery)
	}
	if !c.Strategy.Valid() {
		return fmt.Errorf("unknown strategy %q", c.Strategy)
	}
	return nil
}
