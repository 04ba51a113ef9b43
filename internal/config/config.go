// Package config loads the game configuration from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/samdwyer/ultimaconsole/internal/game"
	"github.com/samdwyer/ultimaconsole/internal/setup"
	"github.com/samdwyer/ultimaconsole/internal/telemetry"
	"github.com/samdwyer/ultimaconsole/internal/world"
)

// DefaultPath is read when neither -config nor ULTIMA_CONFIG is given.
const DefaultPath = "ultimaconsole.yaml"

// Frontend names.
const (
	FrontendTcell = "tcell"
	FrontendTea   = "tea"
	FrontendPlain = "plain"
)

// ErrUnknownFrontend is returned by Validate for an unsupported frontend.
var ErrUnknownFrontend = errors.New("unknown frontend")

// Config holds every setting of the game process.
type Config struct {
	// World is a Lua world script. Empty means a generated default world.
	World string `yaml:"world"`

	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	PlayerName string `yaml:"player_name"`
	Seed       int64  `yaml:"seed"` // 0 means time based
	NPCCount   int    `yaml:"npc_count"`
	ItemCount  int    `yaml:"item_count"`

	LogCapacity    int `yaml:"log_capacity"`
	KillExperience int `yaml:"kill_experience"`

	Frontend string `yaml:"frontend"`

	// Catalogue overrides; empty uses the embedded JSON.
	NPCCatalogue  string `yaml:"npc_catalogue"`
	ItemCatalogue string `yaml:"item_catalogue"`

	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// LoggingConfig controls the slog file sink.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// TelemetryConfig controls trace export.
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
	Dataset  string `yaml:"dataset"`
	APIKey   string `yaml:"-"` // Only ever taken from the environment
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Width:          world.DefaultWidth,
		Height:         world.DefaultHeight,
		PlayerName:     setup.DefaultPlayerName,
		NPCCount:       3,
		ItemCount:      4,
		LogCapacity:    game.DefaultLogCapacity,
		KillExperience: game.DefaultKillExperience,
		Frontend:       FrontendTcell,
		Logging: LoggingConfig{
			Level: "info",
			File:  "ultimaconsole.log",
		},
		Telemetry: TelemetryConfig{
			Enabled:  true,
			Endpoint: telemetry.DefaultEndpoint,
			Dataset:  "ultimaconsole",
		},
	}
}

// Load reads the config file at path over the defaults. A missing file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadDotEnv loads a .env file into the environment if one exists.
// Variables already set are left alone.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// Path returns the config file path: flagValue if set, then ULTIMA_CONFIG,
// then DefaultPath.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv("ULTIMA_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

// ApplyEnv overrides fields from ULTIMA_* and HONEYCOMB_ULTIMA_* variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ULTIMA_WORLD"); v != "" {
		c.World = v
	}
	if v := os.Getenv("ULTIMA_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("ULTIMA_SEED %q: %w", v, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("ULTIMA_FRONTEND"); v != "" {
		c.Frontend = v
	}
	if v := os.Getenv("ULTIMA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ULTIMA_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("HONEYCOMB_ULTIMA_API_KEY"); v != "" {
		c.Telemetry.APIKey = v
	}
	if v := os.Getenv("HONEYCOMB_ULTIMA_DATASET"); v != "" {
		c.Telemetry.Dataset = v
	}
	return nil
}

// Validate checks values that would otherwise fail later in confusing ways.
func (c Config) Validate() error {
	switch strings.ToLower(c.Frontend) {
	case FrontendTcell, FrontendTea, FrontendPlain:
	default:
		return fmt.Errorf("frontend %q: %w", c.Frontend, ErrUnknownFrontend)
	}
	if c.World == "" && (c.Width <= 0 || c.Height <= 0) {
		return fmt.Errorf("world %dx%d: %w", c.Width, c.Height, world.ErrInvalidDimensions)
	}
	return nil
}

// Game returns the game rule options.
func (c Config) Game() game.Config {
	return game.Config{
		LogCapacity:    c.LogCapacity,
		KillExperience: c.KillExperience,
	}
}

// Setup returns the options for a generated default world.
func (c Config) Setup() setup.Options {
	return setup.Options{
		Width:      c.Width,
		Height:     c.Height,
		PlayerName: c.PlayerName,
		NPCCount:   c.NPCCount,
		ItemCount:  c.ItemCount,
	}
}

// TelemetryOptions returns the exporter options.
func (c Config) TelemetryOptions() telemetry.Options {
	return telemetry.Options{
		Endpoint: c.Telemetry.Endpoint,
		APIKey:   c.Telemetry.APIKey,
		Dataset:  c.Telemetry.Dataset,
	}
}
