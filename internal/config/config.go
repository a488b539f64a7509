package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/hexboard/internal/gamemap"
)

// Config holds a board layout recipe
type Config struct {
	Board    BoardConfig     `yaml:"board"`
	TileSets []TileSetConfig `yaml:"tile_sets"`
}

// BoardConfig holds the board shape and placement seed. Each field can be
// overridden from the environment.
type BoardConfig struct {
	Width  int `yaml:"width" env:"HEXBOARD_WIDTH"`
	Height int `yaml:"height" env:"HEXBOARD_HEIGHT"`
	// Seed is nil until set by the file or HEXBOARD_SEED; Parse defaults it
	// to 1. Zero is a valid seed.
	Seed *int64 `yaml:"seed" env:"HEXBOARD_SEED"`
}

// TileSetConfig describes one family of identical tile sets
type TileSetConfig struct {
	Name       string            `yaml:"name"`
	Kind       string            `yaml:"kind"` // single, cluster, custom
	Radius     int               `yaml:"radius"`
	Count      int               `yaml:"count"`
	Policy     string            `yaml:"policy"` // random, adjacent, island
	Rotation   int               `yaml:"rotation"`
	Placements []PlacementConfig `yaml:"placements"`
}

// PlacementConfig is one cell of a custom tile set
type PlacementConfig struct {
	Name   string `yaml:"name"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Border bool   `yaml:"border"`
}

// Load reads configuration from a YAML file and applies environment overrides
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document, applies environment overrides and defaults,
// and validates the result
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := env.Parse(&cfg.Board); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	// Set defaults if not provided
	if cfg.Board.Width == 0 {
		cfg.Board.Width = 12
	}
	if cfg.Board.Height == 0 {
		cfg.Board.Height = 10
	}
	if cfg.Board.Seed == nil {
		seed := int64(1)
		cfg.Board.Seed = &seed
	}
	for i := range cfg.TileSets {
		ts := &cfg.TileSets[i]
		ts.Kind = strings.ToLower(strings.TrimSpace(ts.Kind))
		if ts.Kind == "" {
			ts.Kind = "single"
		}
		if ts.Count == 0 {
			ts.Count = 1
		}
		if ts.Name == "" {
			ts.Name = fmt.Sprintf("set%d", i+1)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the layout for values the board cannot honour
func (c *Config) Validate() error {
	var errs []error
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size must be positive, got %dx%d", c.Board.Width, c.Board.Height))
	}
	for i, ts := range c.TileSets {
		if _, err := parseKind(ts.Kind); err != nil {
			errs = append(errs, fmt.Errorf("tile_sets[%d]: %w", i, err))
		}
		if _, err := gamemap.ParsePolicy(ts.Policy); err != nil {
			errs = append(errs, fmt.Errorf("tile_sets[%d]: %w", i, err))
		}
		if ts.Rotation < 0 || ts.Rotation >= 6 {
			errs = append(errs, fmt.Errorf("tile_sets[%d]: rotation must be in [0,6), got %d", i, ts.Rotation))
		}
		if ts.Count < 0 {
			errs = append(errs, fmt.Errorf("tile_sets[%d]: count cannot be negative", i))
		}
		if ts.Kind == "cluster" && ts.Radius < 0 {
			errs = append(errs, fmt.Errorf("tile_sets[%d]: radius cannot be negative", i))
		}
		if ts.Kind == "custom" && len(ts.Placements) == 0 {
			errs = append(errs, fmt.Errorf("tile_sets[%d]: custom tile set needs placements", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Layout converts the config into a board recipe
func (c *Config) Layout() (gamemap.Layout, error) {
	layout := gamemap.Layout{Width: c.Board.Width, Height: c.Board.Height}
	for _, ts := range c.TileSets {
		kind, err := parseKind(ts.Kind)
		if err != nil {
			return gamemap.Layout{}, err
		}
		policy, err := gamemap.ParsePolicy(ts.Policy)
		if err != nil {
			return gamemap.Layout{}, err
		}
		spec := gamemap.SetSpec{
			Name:     ts.Name,
			Kind:     kind,
			Radius:   ts.Radius,
			Count:    ts.Count,
			Policy:   policy,
			Rotation: ts.Rotation,
		}
		for _, p := range ts.Placements {
			spec.Placements = append(spec.Placements, gamemap.Placement{
				Name:    p.Name,
				OffsetX: p.X,
				OffsetY: p.Y,
				Border:  p.Border,
			})
		}
		layout.Sets = append(layout.Sets, spec)
	}
	return layout, nil
}

func parseKind(s string) (gamemap.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return gamemap.KindSingle, nil
	case "cluster":
		return gamemap.KindCluster, nil
	case "custom":
		return gamemap.KindCustom, nil
	}
	return 0, fmt.Errorf("unknown tile set kind %q", s)
}
