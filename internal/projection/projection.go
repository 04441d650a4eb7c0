// Package projection maps equatorial star positions onto chart coordinates
// and magnitudes onto marker sizes.
//
// The chart uses an equirectangular (plate carrée) projection: right
// ascension runs linearly from 24h at the left edge of the plot area to 0h
// at the right edge, as on a sky chart viewed from below, and declination
// runs linearly from +90° at the top to -90° at the bottom.
package projection

import (
	"fmt"

	"github.com/litescript/ls-starchart/internal/astro"
	"github.com/litescript/ls-starchart/internal/errors"
)

// Layout describes the image and the plot area inside its margins, in pixels.
type Layout struct {
	Width  int
	Height int

	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
}

// DefaultLayout returns a layout with room for a title and axis captions.
func DefaultLayout(width, height int) Layout {
	return Layout{
		Width:        width,
		Height:       height,
		MarginLeft:   70,
		MarginRight:  40,
		MarginTop:    50,
		MarginBottom: 60,
	}
}

// PlotArea returns the top-left and bottom-right corners of the plot area.
func (l Layout) PlotArea() (x0, y0, x1, y1 float64) {
	return l.MarginLeft, l.MarginTop,
		float64(l.Width) - l.MarginRight, float64(l.Height) - l.MarginBottom
}

// MaxDimension bounds each side of the image in pixels.
const MaxDimension = 16384

// Validate checks that the image fits in MaxDimension and that the plot
// area has a positive size.
func (l Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return errors.NewInvalidConfigError("size", fmt.Sprintf("%dx%d", l.Width, l.Height), "width and height must be positive")
	}
	if l.Width > MaxDimension || l.Height > MaxDimension {
		return errors.NewInvalidConfigError("size", fmt.Sprintf("%dx%d", l.Width, l.Height),
			fmt.Sprintf("width and height must not exceed %d", MaxDimension))
	}
	x0, y0, x1, y1 := l.PlotArea()
	if x1 <= x0 || y1 <= y0 {
		return errors.NewInvalidConfigError("size", fmt.Sprintf("%dx%d", l.Width, l.Height), "too small for chart margins")
	}
	return nil
}

// Projection maps right ascension (hours) and declination (degrees) onto
// image coordinates.
type Projection interface {
	Project(raHours, decDeg float64) (x, y float64)
	Name() string
}

// Equirectangular is the linear RA/Dec projection described in the package
// documentation.
type Equirectangular struct {
	Layout Layout
}

// Name returns the projection name.
func (Equirectangular) Name() string {
	return "equirectangular"
}

// Project maps RA/Dec onto the plot area. x strictly decreases as RA
// increases and y strictly decreases as Dec increases.
func (p Equirectangular) Project(raHours, decDeg float64) (x, y float64) {
	x0, y0, x1, y1 := p.Layout.PlotArea()
	x = x0 + (astro.RAHoursMax-raHours)/astro.RAHoursMax*(x1-x0)
	y = y0 + (astro.DecDegMax-decDeg)/(astro.DecDegMax-astro.DecDegMin)*(y1-y0)
	return x, y
}

// Point is a star ready to be drawn.
type Point struct {
	X    float64
	Y    float64
	Size float64 // marker radius in pixels
	// Label is the text drawn next to the marker; empty means no label.
	Label string
}

// Projector turns star records into drawable points.
type Projector struct {
	Projection Projection
	Scale      MagnitudeScale
}

// New returns a projector using the equirectangular projection and the
// default magnitude scale.
func New(layout Layout) *Projector {
	return &Projector{
		Projection: Equirectangular{Layout: layout},
		Scale:      DefaultMagnitudeScale(),
	}
}

// Project returns one point per star, in input order.
func (p *Projector) Project(stars []astro.Star, showLabels bool) []Point {
	points := make([]Point, 0, len(stars))
	for _, s := range stars {
		x, y := p.Projection.Project(s.RAHours, s.DecDeg)
		pt := Point{X: x, Y: y, Size: p.Scale.Size(s.Mag)}
		if showLabels {
			pt.Label = s.Name
		}
		points = append(points, pt)
	}
	return points
}
