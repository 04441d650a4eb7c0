// Command ls-starchart renders a star catalogue as an equirectangular PNG chart.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/ls-starchart/internal/chart"
	"github.com/litescript/ls-starchart/internal/config"
	"github.com/litescript/ls-starchart/internal/logging"
	"github.com/litescript/ls-starchart/internal/preview"
	"github.com/litescript/ls-starchart/internal/version"
)

// summaryStars is the number of stars listed under --preview.
const summaryStars = 10

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "ls-starchart",
		Short: "Render a star catalogue as a PNG sky chart",
		Long: `ls-starchart reads a CSV star catalogue (name, right ascension in hours,
declination in degrees, visual magnitude) and draws it as an
equirectangular chart: right ascension increases to the left, brighter
stars get larger markers.

Without --data the bundled bright-star catalogue is used. Every flag can
also be set through a STARCHART_* environment variable (for example
STARCHART_THEME=light), a .env file, or a YAML file passed with --config.`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader := config.NewLoader()
			if err := loader.BindFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := loader.Load(configFile)
			if err != nil {
				return err
			}
			return run(cfg, loader.ConfigFileUsed(), stdout, stderr)
		},
	}

	d := config.Default()
	f := cmd.Flags()
	f.StringVarP(&configFile, "config", "c", "", "YAML config file")
	f.StringP(config.KeyOutput, "o", d.OutputPath, "destination PNG file")
	f.String(config.KeyTheme, d.Theme, "colour theme: dark, light")
	f.Bool(config.KeyShowLabels, d.ShowLabels, "draw star names next to markers")
	f.String(config.KeyData, d.CataloguePath, "catalogue CSV (default: bundled bright stars)")
	f.Int(config.KeyWidth, d.Width, "image width in pixels")
	f.Int(config.KeyHeight, d.Height, "image height in pixels")
	f.Bool(config.KeyGrid, d.Grid, "draw the RA/Dec grid and axis captions")
	f.String(config.KeyTitle, d.Title, "chart title (empty for none)")
	f.Bool(config.KeyStrict, d.Strict, "abort on the first malformed catalogue row")
	f.Bool(config.KeyPreview, d.Preview, "also print a text preview and summary")
	f.String(config.KeyLogLevel, d.LogLevel, "log level: debug, info, warn, error")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("ls-starchart {{.Version}}\n")
	return cmd
}

func run(cfg config.ChartConfig, configFile string, stdout, stderr io.Writer) error {
	logger := logging.New(logging.ParseLevel(cfg.LogLevel))
	logger.SetOutput(stderr)
	if configFile != "" {
		logger.Debug("Using config file %s", configFile)
	}

	res, err := chart.Generate(cfg, logger)
	if err != nil {
		return err
	}

	isTTY := isTerminal(stdout)

	if cfg.Preview {
		opts := preview.DefaultOptions()
		opts.ShowLabels = cfg.ShowLabels
		opts.Title = cfg.Title
		opts.NoColor = !isTTY || os.Getenv("NO_COLOR") != ""
		if f, ok := stdout.(*os.File); ok && isTTY {
			if w, h, err := term.GetSize(int(f.Fd())); err == nil {
				opts.Width = min(w-2, opts.Width*2)
				opts.Height = min(h/2, opts.Height*2)
			}
		}
		fmt.Fprintln(stdout, preview.Render(res.Stars, opts))
		fmt.Fprintln(stdout)
		preview.WriteSummary(stdout, res.Source, res.Stars, res.Skipped, summaryStars)
		fmt.Fprintln(stdout)
	}

	fmt.Fprintln(stdout, summaryLine(res, isTTY))
	return nil
}

// summaryLine is the one-line result printed after every successful run.
func summaryLine(res *chart.Result, color bool) string {
	line := fmt.Sprintf("Wrote %s: %d stars", res.Output, res.Markers)
	if res.Labels > 0 {
		line += fmt.Sprintf(", %d labels", res.Labels)
	}
	if res.Skipped > 0 {
		line += fmt.Sprintf(", %d rows skipped", res.Skipped)
	}
	if !color {
		return line
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a")).Render("✓ ") + line
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
