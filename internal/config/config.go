// Package config resolves the chart configuration from command-line flags,
// STARCHART_* environment variables, .env files and an optional YAML file.
//
// Precedence, highest first: flags that were set explicitly, environment,
// .env.local, .env, config file, defaults. The .env files are read, never
// exported into the process environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/litescript/ls-starchart/internal/errors"
	"github.com/litescript/ls-starchart/internal/projection"
	"github.com/litescript/ls-starchart/internal/render"
)

// EnvPrefix prefixes every environment variable, e.g. STARCHART_THEME.
const EnvPrefix = "STARCHART"

// Keys shared by flags, environment variables and the config file.
const (
	KeyTheme      = "theme"
	KeyShowLabels = "show-labels"
	KeyData       = "data"
	KeyOutput     = "output"
	KeyWidth      = "width"
	KeyHeight     = "height"
	KeyGrid       = "grid"
	KeyTitle      = "title"
	KeyStrict     = "strict"
	KeyPreview    = "preview"
	KeyLogLevel   = "log-level"
)

var keys = []string{
	KeyTheme, KeyShowLabels, KeyData, KeyOutput, KeyWidth, KeyHeight,
	KeyGrid, KeyTitle, KeyStrict, KeyPreview, KeyLogLevel,
}

// envFiles are read in order; later files override earlier ones.
var envFiles = []string{".env", ".env.local"}

// Defaults
const (
	DefaultOutput   = "night_sky.png"
	DefaultWidth    = 1500
	DefaultHeight   = 900
	DefaultTitle    = "Night Sky"
	DefaultLogLevel = "info"
)

// ChartConfig is the resolved, immutable configuration for one run.
type ChartConfig struct {
	Theme         string
	ShowLabels    bool
	CataloguePath string // empty selects the bundled catalogue
	OutputPath    string

	Width  int
	Height int
	Grid   bool
	Title  string

	Strict   bool
	Preview  bool
	LogLevel string
}

// Default returns the configuration used when nothing is set.
func Default() ChartConfig {
	return ChartConfig{
		Theme:      render.DefaultTheme,
		OutputPath: DefaultOutput,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Grid:       true,
		Title:      DefaultTitle,
		LogLevel:   DefaultLogLevel,
	}
}

// Layout returns the chart layout for the configured image size.
func (c ChartConfig) Layout() projection.Layout {
	return projection.DefaultLayout(c.Width, c.Height)
}

// Validate checks values that cannot be rendered.
func (c ChartConfig) Validate() error {
	if _, err := render.LookupTheme(c.Theme); err != nil {
		return err
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return errors.NewInvalidConfigError(KeyOutput, `""`, "output path is required")
	}
	if err := c.Layout().Validate(); err != nil {
		return err
	}
	return nil
}

// Loader resolves a ChartConfig from its own viper instance.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader with defaults and environment binding.
func NewLoader() *Loader {
	v := viper.New()

	d := Default()
	v.SetDefault(KeyTheme, d.Theme)
	v.SetDefault(KeyShowLabels, d.ShowLabels)
	v.SetDefault(KeyData, d.CataloguePath)
	v.SetDefault(KeyOutput, d.OutputPath)
	v.SetDefault(KeyWidth, d.Width)
	v.SetDefault(KeyHeight, d.Height)
	v.SetDefault(KeyGrid, d.Grid)
	v.SetDefault(KeyTitle, d.Title)
	v.SetDefault(KeyStrict, d.Strict)
	v.SetDefault(KeyPreview, d.Preview)
	v.SetDefault(KeyLogLevel, d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// BindFlags binds every flag in fs to the key of the same name.
func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	if err := l.v.BindPFlags(fs); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	return nil
}

// Load resolves the configuration. configFile may be empty.
func (l *Loader) Load(configFile string) (ChartConfig, error) {
	if configFile != "" {
		l.v.SetConfigFile(configFile)
		if err := l.v.ReadInConfig(); err != nil {
			return ChartConfig{}, errors.NewInvalidConfigError("config file", configFile, err.Error())
		}
	}

	// Merged over the config file layer, so real environment variables and
	// flags still win.
	dotenv, err := readEnvFiles(envFiles)
	if err != nil {
		return ChartConfig{}, err
	}
	if len(dotenv) > 0 {
		if err := l.v.MergeConfigMap(dotenv); err != nil {
			return ChartConfig{}, errors.NewInvalidConfigError("env file", envFiles, err.Error())
		}
	}

	cfg := ChartConfig{
		Theme:         strings.ToLower(strings.TrimSpace(l.v.GetString(KeyTheme))),
		ShowLabels:    l.v.GetBool(KeyShowLabels),
		CataloguePath: l.v.GetString(KeyData),
		OutputPath:    l.v.GetString(KeyOutput),
		Width:         l.v.GetInt(KeyWidth),
		Height:        l.v.GetInt(KeyHeight),
		Grid:          l.v.GetBool(KeyGrid),
		Title:         l.v.GetString(KeyTitle),
		Strict:        l.v.GetBool(KeyStrict),
		Preview:       l.v.GetBool(KeyPreview),
		LogLevel:      l.v.GetString(KeyLogLevel),
	}

	if err := cfg.Validate(); err != nil {
		return ChartConfig{}, err
	}
	return cfg, nil
}

// ConfigFileUsed returns the config file that was read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// envName returns the environment variable for key, e.g. STARCHART_SHOW_LABELS.
func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// readEnvFiles returns the STARCHART_* settings found in files, keyed by
// config key. Later files override earlier ones; missing files are skipped.
func readEnvFiles(files []string) (map[string]any, error) {
	out := map[string]any{}
	for _, f := range files {
		vars, err := godotenv.Read(f)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, errors.NewInvalidConfigError("env file", f, err.Error())
		}
		for _, key := range keys {
			if val, ok := vars[envName(key)]; ok {
				out[key] = val
			}
		}
	}
	return out, nil
}
