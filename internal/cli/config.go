package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mkoenig/dobble/pkg/pipeline"
)

// Config is the TOML deck configuration accepted by --config. All fields
// are optional; zero values fall back to flag values and pipeline defaults.
//
// Example:
//
//	name = "animals"
//	output = "decks"
//
//	[deck]
//	symbols_per_card = 8
//	mode = "color"
//
//	[layout]
//	packing = "ccib"
//	seed = 7
//
//	[render]
//	card_size = 2048
//
//	[assets]
//	dir = "openmoji"
type Config struct {
	Name   string `toml:"name"`
	Output string `toml:"output"`

	Deck struct {
		SymbolsPerCard int    `toml:"symbols_per_card"`
		Mode           string `toml:"mode"`
	} `toml:"deck"`

	Layout struct {
		Packing       string  `toml:"packing"`
		MinScale      float64 `toml:"min_scale"`
		MaxScale      float64 `toml:"max_scale"`
		Jitter        float64 `toml:"jitter"`
		RotationRange float64 `toml:"rotation_range"`
		NoShuffle     bool    `toml:"no_shuffle"`
		Seed          uint64  `toml:"seed"`
	} `toml:"layout"`

	Render struct {
		CardSize int     `toml:"card_size"`
		Padding  float64 `toml:"padding"`
		Workers  int     `toml:"workers"`
	} `toml:"render"`

	Assets struct {
		Dir string `toml:"dir"`
	} `toml:"assets"`
}

// loadConfig reads and parses a TOML deck configuration file.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// apply copies non-zero config values onto pipeline options. Flags that the
// user set explicitly are applied after this and take precedence.
func (cfg *Config) apply(opts *pipeline.Options) {
	if cfg.Deck.SymbolsPerCard != 0 {
		opts.SymbolsPerCard = cfg.Deck.SymbolsPerCard
	}
	if cfg.Deck.Mode != "" {
		opts.Mode = cfg.Deck.Mode
	}
	if cfg.Layout.Packing != "" {
		opts.Packing = cfg.Layout.Packing
	}
	if cfg.Layout.MinScale != 0 {
		opts.MinScale = cfg.Layout.MinScale
	}
	if cfg.Layout.MaxScale != 0 {
		opts.MaxScale = cfg.Layout.MaxScale
	}
	if cfg.Layout.Jitter != 0 {
		opts.Jitter = cfg.Layout.Jitter
	}
	if cfg.Layout.RotationRange != 0 {
		opts.RotationRange = cfg.Layout.RotationRange
	}
	if cfg.Layout.NoShuffle {
		opts.NoShuffle = true
	}
	if cfg.Layout.Seed != 0 {
		opts.Seed = cfg.Layout.Seed
	}
	if cfg.Render.CardSize != 0 {
		opts.CardSize = cfg.Render.CardSize
	}
	if cfg.Render.Padding != 0 {
		opts.Padding = cfg.Render.Padding
	}
	if cfg.Render.Workers != 0 {
		opts.Workers = cfg.Render.Workers
	}
}
