// Package render draws projected stars onto a raster chart.
package render

import (
	"fmt"
	"image"
	"sort"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/litescript/ls-starchart/internal/projection"
)

const (
	labelGap = 4.0 // pixels between marker edge and label

	raGridStep  = 2  // hours between RA grid lines
	decGridStep = 30 // degrees between Dec grid lines

	captionRA  = "Right Ascension (h)"
	captionDec = "Declination (deg)"
)

// Options controls a single render.
type Options struct {
	Theme      Theme
	Layout     projection.Layout
	ShowLabels bool
	Grid       bool   // RA/Dec grid, plot frame and axis captions
	Title      string // drawn above the plot; empty draws nothing
}

// Chart is a rendered star chart.
type Chart struct {
	Image   image.Image
	Markers int
	Labels  int
}

// Render draws points on a themed background.
//
// Labels are drawn before markers, and markers are drawn faint to bright,
// so a label never covers a marker and a bright marker is never covered by
// a fainter one.
func Render(points []projection.Point, opts Options) (*Chart, error) {
	if err := opts.Layout.Validate(); err != nil {
		return nil, err
	}

	dc := gg.NewContext(opts.Layout.Width, opts.Layout.Height)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(opts.Theme.BackgroundColor())
	dc.Clear()

	if opts.Grid {
		drawGrid(dc, opts)
	}
	if opts.Title != "" {
		dc.SetColor(opts.Theme.ForegroundColor())
		dc.DrawStringAnchored(asciiLabel(opts.Title), float64(opts.Layout.Width)/2, opts.Layout.MarginTop/2, 0.5, 0.5)
	}

	chart := &Chart{}

	if opts.ShowLabels {
		dc.SetColor(opts.Theme.ForegroundColor())
		for _, pt := range points {
			if pt.Label == "" {
				continue
			}
			dc.DrawStringAnchored(asciiLabel(pt.Label), pt.X+pt.Size+labelGap, pt.Y, 0, 0.5)
			chart.Labels++
		}
	}

	dc.SetColor(opts.Theme.MarkerColor())
	for _, i := range drawOrder(points) {
		pt := points[i]
		dc.DrawCircle(pt.X, pt.Y, pt.Size)
		dc.Fill()
		chart.Markers++
	}

	chart.Image = dc.Image()
	return chart, nil
}

// drawOrder returns point indexes sorted by ascending marker size. Equal
// sizes keep input order.
func drawOrder(points []projection.Point) []int {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return points[order[a]].Size < points[order[b]].Size
	})
	return order
}

func drawGrid(dc *gg.Context, opts Options) {
	proj := projection.Equirectangular{Layout: opts.Layout}
	x0, y0, x1, y1 := opts.Layout.PlotArea()

	dc.SetColor(opts.Theme.GridColor())
	dc.SetLineWidth(1)

	for h := 0; h <= 24; h += raGridStep {
		x, _ := proj.Project(float64(h), 0)
		dc.DrawLine(x, y0, x, y1)
		dc.Stroke()
	}
	for d := -90; d <= 90; d += decGridStep {
		_, y := proj.Project(0, float64(d))
		dc.DrawLine(x0, y, x1, y)
		dc.Stroke()
	}

	dc.SetColor(opts.Theme.ForegroundColor())
	for h := 0; h <= 24; h += raGridStep {
		x, _ := proj.Project(float64(h), 0)
		dc.DrawStringAnchored(fmt.Sprintf("%dh", h), x, y1+6, 0.5, 1)
	}
	for d := -90; d <= 90; d += decGridStep {
		_, y := proj.Project(0, float64(d))
		dc.DrawStringAnchored(fmt.Sprintf("%+d", d), x0-6, y, 1, 0.5)
	}

	dc.DrawStringAnchored(captionRA, (x0+x1)/2, float64(opts.Layout.Height)-opts.Layout.MarginBottom/3, 0.5, 0.5)

	cx, cy := opts.Layout.MarginLeft/4, (y0+y1)/2
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), cx, cy)
	dc.DrawStringAnchored(captionDec, cx, cy, 0.5, 0.5)
	dc.Pop()
}
