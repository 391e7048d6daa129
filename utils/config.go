package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for values the simulation cannot run with
var ErrInvalidConfig = errors.New("invalid configuration")

// Duration is a time.Duration written as a string ("100ms") in config files
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "[Duration.UnmarshalText] bad duration %q", text)
	}
	*d = Duration(parsed)
	return nil
}

// Config holds the configuration for the simulation and its driver
type Config struct {
	Size                int      `json:"size" toml:"size"`
	TickPeriod          Duration `json:"tick_period" toml:"tick_period"`
	SeedDensity         float64  `json:"seed_density" toml:"seed_density"`
	Seed                int64    `json:"seed" toml:"seed"`
	Workers             int      `json:"workers" toml:"workers"`
	MaxTicks            int      `json:"max_ticks" toml:"max_ticks"`
	AutoRestart         bool     `json:"auto_restart" toml:"auto_restart"`
	StagnationThreshold int      `json:"stagnation_threshold" toml:"stagnation_threshold"`
	Render              bool     `json:"render" toml:"render"`
	LogLevel            string   `json:"log_level" toml:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:                128,
		TickPeriod:          Duration(100 * time.Millisecond),
		SeedDensity:         0.5,
		Seed:                0, // time based
		Workers:             0, // runtime.NumCPU
		MaxTicks:            1000,
		AutoRestart:         true,
		StagnationThreshold: 5,
		Render:              true,
		LogLevel:            "info",
	}
}

// LoadConfig loads configuration from a JSON or TOML file, chosen by extension
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = toml.Unmarshal(data, &config)
	case ".json":
		err = json.Unmarshal(data, &config)
	default:
		return config, errors.Errorf("[LoadConfig] unsupported config format: %+v", filename)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, config.Validate()
}

// Validate checks the values a simulation needs to start
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] size must be positive, got %d", c.Size)
	case c.TickPeriod <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] tick_period must be positive, got %s", time.Duration(c.TickPeriod))
	case c.SeedDensity < 0 || c.SeedDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] seed_density must be within [0,1], got %v", c.SeedDensity)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers must not be negative, got %d", c.Workers)
	case c.MaxTicks < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_ticks must not be negative, got %d", c.MaxTicks)
	case c.StagnationThreshold < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation_threshold must not be negative, got %d", c.StagnationThreshold)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}
