package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-starchart/internal/errors"
)

// newFlagSet mirrors the flags registered by the command.
func newFlagSet() *pflag.FlagSet {
	d := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(KeyTheme, d.Theme, "")
	fs.Bool(KeyShowLabels, d.ShowLabels, "")
	fs.String(KeyData, d.CataloguePath, "")
	fs.String(KeyOutput, d.OutputPath, "")
	fs.Int(KeyWidth, d.Width, "")
	fs.Int(KeyHeight, d.Height, "")
	fs.Bool(KeyGrid, d.Grid, "")
	fs.String(KeyTitle, d.Title, "")
	fs.Bool(KeyStrict, d.Strict, "")
	fs.Bool(KeyPreview, d.Preview, "")
	fs.String(KeyLogLevel, d.LogLevel, "")
	return fs
}

func load(t *testing.T, args []string, configFile string) (ChartConfig, error) {
	t.Helper()
	fs := newFlagSet()
	require.NoError(t, fs.Parse(args))

	l := NewLoader()
	require.NoError(t, l.BindFlags(fs))
	return l.Load(configFile)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t, nil, "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "night_sky.png", cfg.OutputPath)
	assert.Empty(t, cfg.CataloguePath)
	assert.False(t, cfg.ShowLabels)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := load(t, []string{
		"--theme", "light",
		"--show-labels",
		"--data", "stars.csv",
		"--output", "out/chart.png",
		"--width", "800",
		"--height", "600",
		"--grid=false",
		"--title", "",
		"--strict",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.Theme)
	assert.True(t, cfg.ShowLabels)
	assert.Equal(t, "stars.csv", cfg.CataloguePath)
	assert.Equal(t, "out/chart.png", cfg.OutputPath)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.False(t, cfg.Grid)
	assert.Empty(t, cfg.Title)
	assert.True(t, cfg.Strict)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("STARCHART_THEME", "light")
	t.Setenv("STARCHART_SHOW_LABELS", "true")

	cfg, err := load(t, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
	assert.True(t, cfg.ShowLabels)

	// Explicit flags beat the environment
	cfg, err = load(t, []string{"--theme", "dark"}, "")
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starchart.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\nshow-labels: true\nwidth: 1000\n"), 0o644))

	cfg, err := load(t, []string{"--width", "1200"}, path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
	assert.True(t, cfg.ShowLabels)
	assert.Equal(t, 1200, cfg.Width, "flag should override config file")
}

func TestLoad_EnvFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("STARCHART_THEME=light\nSTARCHART_WIDTH=800\nSTARCHART_SHOW_LABELS=true\nOTHER=ignored\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"),
		[]byte("STARCHART_WIDTH=1000\n"), 0o644))
	t.Chdir(dir)

	cfg, err := load(t, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, 1000, cfg.Width, ".env.local should override .env")
	assert.True(t, cfg.ShowLabels)

	_, exported := os.LookupEnv("STARCHART_THEME")
	assert.False(t, exported, ".env values must not leak into the process environment")

	// The real environment beats .env files, and flags beat both.
	t.Setenv("STARCHART_THEME", "dark")
	cfg, err = load(t, []string{"--width", "1200"}, "")
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 1200, cfg.Width)
}

func TestLoad_EnvFilesOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "starchart.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\nheight: 700\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STARCHART_THEME=light\n"), 0o644))
	t.Chdir(dir)

	cfg, err := load(t, nil, path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, 700, cfg.Height)
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "STARCHART_SHOW_LABELS", envName(KeyShowLabels))
	assert.Equal(t, "STARCHART_THEME", envName(KeyTheme))
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := load(t, nil, filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestLoad_ThemeIsCaseInsensitive(t *testing.T) {
	cfg, err := load(t, []string{"--theme", " Light "}, "")
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ChartConfig)
	}{
		{"unknown theme", func(c *ChartConfig) { c.Theme = "sepia" }},
		{"empty output", func(c *ChartConfig) { c.OutputPath = " " }},
		{"zero width", func(c *ChartConfig) { c.Width = 0 }},
		{"too small for margins", func(c *ChartConfig) { c.Width, c.Height = 100, 100 }},
		{"too large", func(c *ChartConfig) { c.Width, c.Height = 100000, 100000 }},
	}

	require.NoError(t, Default().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidConfig(err))
		})
	}
}

func TestLayout(t *testing.T) {
	cfg := Default()
	l := cfg.Layout()
	assert.Equal(t, cfg.Width, l.Width)
	assert.Equal(t, cfg.Height, l.Height)
}
