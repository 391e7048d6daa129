package utils

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"size": 256,
		"tick_period": "10ms",
		"seed_density": 0.25,
		"seed": 7,
		"workers": 4
	}`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 256, config.Size)
	assert.Equal(t, Duration(10*time.Millisecond), config.TickPeriod)
	assert.Equal(t, 0.25, config.SeedDensity)
	assert.Equal(t, int64(7), config.Seed)
	assert.Equal(t, 4, config.Workers)
	// untouched fields keep their defaults
	assert.Equal(t, DefaultConfig().MaxTicks, config.MaxTicks)
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
size = 128
tick_period = "100ms"
max_ticks = 0
auto_restart = false
log_level = "debug"
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 128, config.Size)
	assert.Equal(t, Duration(100*time.Millisecond), config.TickPeriod)
	assert.Equal(t, 0, config.MaxTicks)
	assert.False(t, config.AutoRestart)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "config.yaml", "size: 3"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "config.json", `{"size": `))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "config.json", `{"tick_period": "soon"}`))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "config.json", `{"size": 0}`))
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero size", func(c *Config) { c.Size = 0 }},
		{"negative size", func(c *Config) { c.Size = -5 }},
		{"zero period", func(c *Config) { c.TickPeriod = 0 }},
		{"density above one", func(c *Config) { c.SeedDensity = 1.5 }},
		{"negative density", func(c *Config) { c.SeedDensity = -0.1 }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"negative max ticks", func(c *Config) { c.MaxTicks = -1 }},
		{"negative stagnation threshold", func(c *Config) { c.StagnationThreshold = -1 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			assert.True(t, errors.Is(config.Validate(), ErrInvalidConfig))
		})
	}
}

func TestDurationText(t *testing.T) {
	text, err := Duration(250 * time.Millisecond).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "250ms", string(text))

	var d Duration
	require.NoError(t, d.UnmarshalText(text))
	assert.Equal(t, Duration(250*time.Millisecond), d)
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown", "tick", 3)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "tick=3")
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 100*time.Millisecond)
	assert.Equal(t, uint64(1), s.TotalTicks)
	assert.InDelta(t, 10.0, s.TicksPerSecond, 1e-9)
	assert.Equal(t, 100.0, s.AveragePopulation)

	s.Update(2, 200, 0)
	assert.InDelta(t, 110.0, s.AveragePopulation, 1e-9)
	assert.InDelta(t, 10.0, s.TicksPerSecond, 1e-9)
}
