package pathfinding

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML service configuration.
//
//	grid:
//	  width: 64
//	  height: 48
//	  allow_diagonal: false
//	obstacles:
//	  - {x: 3, y: 4}
//	log_level: debug
type Config struct {
	Grid      GridConfig `yaml:"grid"`
	Obstacles []Point    `yaml:"obstacles"`
	LogLevel  string     `yaml:"log_level"`
}

// GridConfig sizes the grid and picks the movement model.
// AllowDiagonal defaults to true when omitted.
type GridConfig struct {
	Width         int   `yaml:"width"`
	Height        int   `yaml:"height"`
	AllowDiagonal *bool `yaml:"allow_diagonal"`
}

// DiagonalAllowed resolves the AllowDiagonal default.
func (c GridConfig) DiagonalAllowed() bool {
	return c.AllowDiagonal == nil || *c.AllowDiagonal
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates a YAML config document.
func ParseConfig(raw []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks grid size, obstacle coordinates and the log level.
// Unlike SetObstacles, an authored config rejects out-of-range obstacles.
func (c Config) Validate() error {
	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	for i, p := range c.Obstacles {
		if p.X < 0 || p.X >= c.Grid.Width || p.Y < 0 || p.Y >= c.Grid.Height {
			return fmt.Errorf("%w: obstacle %d at %s outside %dx%d grid",
				ErrInvalidConfig, i, p, c.Grid.Width, c.Grid.Height)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel; empty means info.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}

// NewServiceFromConfig builds a service from a validated config and applies
// its obstacles. A text logger at the configured level writes to stderr
// unless opts supply another logger.
func NewServiceFromConfig(cfg Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lvl, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	s, err := NewService(cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.DiagonalAllowed(),
		append([]Option{WithLogger(logger)}, opts...)...)
	if err != nil {
		return nil, err
	}
	s.SetObstacles(cfg.Obstacles)

	return s, nil
}
