package app

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width     int   `yaml:"width"`
	Height    int   `yaml:"height"`
	TPS       int   `yaml:"tps"`
	Seed      int64 `yaml:"seed"`
	Antialias bool  `yaml:"antialias"`
	Debug     bool  `yaml:"debug"`

	ConfigPath string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 800, Height: 600, TPS: 60, Seed: 42, Antialias: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for split randomness (0 = time based)")
	fs.BoolVar(&c.Antialias, "aa", c.Antialias, "antialias circle edges")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log session events to stderr")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional YAML config file")
}

// Parse parses args into fs. When -config names a file its values are loaded
// first and the args are parsed again so explicit flags win.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.ConfigPath == "" {
		return nil
	}
	if err := c.LoadFile(c.ConfigPath); err != nil {
		return err
	}
	return fs.Parse(args)
}

// LoadFile overlays values from a YAML file onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return c.Validate()
}

// Validate rejects dimensions and rates the game cannot run with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive", c.TPS)
	}
	return nil
}

// EffectiveSeed returns Seed, or a wall-clock seed when Seed is zero.
func (c *Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Logger returns a development logger when Debug is set and a no-op logger otherwise.
func (c *Config) Logger() (*zap.Logger, error) {
	if !c.Debug {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
