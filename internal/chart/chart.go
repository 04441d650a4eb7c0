// Package chart runs the catalogue -> projection -> render pipeline for a
// resolved configuration.
package chart

import (
	"github.com/litescript/ls-starchart/internal/astro"
	"github.com/litescript/ls-starchart/internal/catalog"
	"github.com/litescript/ls-starchart/internal/config"
	"github.com/litescript/ls-starchart/internal/logging"
	"github.com/litescript/ls-starchart/internal/projection"
	"github.com/litescript/ls-starchart/internal/render"
)

// Result summarises one run.
type Result struct {
	Source  string
	Output  string
	Stars   []astro.Star
	Skipped int
	Markers int
	Labels  int
}

// Build loads, projects and renders the chart without writing it.
func Build(cfg config.ChartConfig, log *logging.Logger) (*render.Chart, *Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	theme, err := render.LookupTheme(cfg.Theme)
	if err != nil {
		return nil, nil, err
	}
	bg, fg := theme.Hex()
	log.Debug("Theme %s (background %s, foreground %s)", theme.Name, bg, fg)

	cat, err := catalog.Load(cfg.CataloguePath, catalog.Options{Strict: cfg.Strict})
	if err != nil {
		return nil, nil, err
	}
	for _, fe := range cat.Skipped {
		log.Warn("Skipping row: %v", fe)
	}
	log.Debug("Loaded %d stars from %s (%d skipped)", len(cat.Stars), cat.Source, len(cat.Skipped))

	layout := cfg.Layout()
	points := projection.New(layout).Project(cat.Stars, cfg.ShowLabels)

	img, err := render.Render(points, render.Options{
		Theme:      theme,
		Layout:     layout,
		ShowLabels: cfg.ShowLabels,
		Grid:       cfg.Grid,
		Title:      cfg.Title,
	})
	if err != nil {
		return nil, nil, err
	}
	log.Debug("Rendered %d markers, %d labels (%s theme, %dx%d)",
		img.Markers, img.Labels, theme.Name, layout.Width, layout.Height)

	return img, &Result{
		Source:  cat.Source,
		Output:  cfg.OutputPath,
		Stars:   cat.Stars,
		Skipped: len(cat.Skipped),
		Markers: img.Markers,
		Labels:  img.Labels,
	}, nil
}

// Generate builds the chart and writes it to cfg.OutputPath.
func Generate(cfg config.ChartConfig, log *logging.Logger) (*Result, error) {
	img, res, err := Build(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := render.WriteFile(cfg.OutputPath, img.Image); err != nil {
		return nil, err
	}
	log.Info("Wrote %s (%d stars)", cfg.OutputPath, res.Markers)
	return res, nil
}
