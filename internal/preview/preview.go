// Package preview renders a star chart as coloured text for the terminal.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starchart/internal/astro"
	"github.com/litescript/ls-starchart/internal/projection"
)

const (
	// Star glyphs by magnitude
	glyphStarBright  = '✶' // mag < 1.5
	glyphStarMedium  = '✸' // mag 1.5-3.0
	glyphStarDim     = '•' // mag 3.0-4.0
	glyphStarVeryDim = '·' // mag > 4.0

	// Star colors
	colorStarBright  = "255" // bright white
	colorStarMedium  = "250" // medium gray
	colorStarDim     = "244" // dim gray
	colorStarVeryDim = "240" // very dim gray

	colorLabel = "#d0c8ff"
	colorFrame = "60" // muted purple
)

// Options controls the text canvas.
type Options struct {
	Width      int // canvas columns inside the frame
	Height     int // canvas rows inside the frame
	ShowLabels bool
	Title      string
	NoColor    bool
}

// DefaultOptions returns a canvas that fits an 80x24 terminal.
func DefaultOptions() Options {
	return Options{
		Width:  72,
		Height: 18,
		Title:  "Night Sky",
	}
}

type cell struct {
	r     rune
	color lipgloss.Color
}

// Render draws stars onto a framed text canvas using the same
// equirectangular projection as the PNG chart.
func Render(stars []astro.Star, opts Options) string {
	if opts.Width < 10 || opts.Height < 4 {
		return "Preview requires a larger canvas"
	}

	canvas := make([][]cell, opts.Height)
	for y := range canvas {
		canvas[y] = make([]cell, opts.Width)
		for x := range canvas[y] {
			canvas[y][x] = cell{r: ' '}
		}
	}

	proj := projection.Equirectangular{Layout: projection.Layout{Width: opts.Width, Height: opts.Height}}

	// Brightest first so brighter stars claim cells and label space.
	ordered := astro.Brightest(stars, len(stars))

	type placed struct {
		x, y int
		name string
	}
	var positions []placed

	for _, s := range ordered {
		px, py := proj.Project(s.RAHours, s.DecDeg)
		x, y := clampCell(px, opts.Width), clampCell(py, opts.Height)
		if canvas[y][x].r != ' ' {
			continue
		}
		glyph, color := starGlyph(s.Mag)
		canvas[y][x] = cell{r: glyph, color: color}
		positions = append(positions, placed{x: x, y: y, name: s.Name})
	}

	if opts.ShowLabels {
		// Labels go right of the glyph with a one-cell gap and never
		// overwrite a star or an earlier (brighter) label.
		for _, pos := range positions {
			runes := []rune(pos.name)
			start := pos.x + 2
			if start+len(runes) > opts.Width || !free(canvas[pos.y], pos.x+1, start+len(runes)) {
				continue
			}
			for i, r := range runes {
				canvas[pos.y][start+i] = cell{r: r, color: colorLabel}
			}
		}
	}

	var b strings.Builder
	for y, row := range canvas {
		for _, c := range row {
			if opts.NoColor || c.color == "" {
				b.WriteRune(c.r)
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(c.color).Render(string(c.r)))
		}
		if y < len(canvas)-1 {
			b.WriteString("\n")
		}
	}

	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	if !opts.NoColor {
		frame = frame.BorderForeground(lipgloss.Color(colorFrame))
	}

	var out strings.Builder
	if opts.Title != "" {
		out.WriteString(renderHeader(opts))
		out.WriteString("\n")
	}
	out.WriteString(frame.Render(b.String()))
	out.WriteString("\n")
	out.WriteString(axisLine(opts.Width))
	return out.String()
}

func renderHeader(opts Options) string {
	if opts.NoColor {
		return opts.Title
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135")) // violet
	return titleStyle.Render(opts.Title)
}

// axisLine labels the RA extremes under the frame.
func axisLine(width int) string {
	left, right := "24h", "0h"
	gap := width + 2 - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// clampCell converts a projected coordinate to a cell index in [0, n).
func clampCell(v float64, n int) int {
	i := int(v)
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// free reports whether row[from:to] holds only blank cells.
func free(row []cell, from, to int) bool {
	for x := from; x < to && x < len(row); x++ {
		if row[x].r != ' ' {
			return false
		}
	}
	return true
}

// starGlyph returns the appropriate glyph and color for a star based on its magnitude.
// Brighter stars (lower magnitude) get more prominent symbols.
func starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 1.5:
		return glyphStarBright, colorStarBright
	case mag < 3.0:
		return glyphStarMedium, colorStarMedium
	case mag < 4.0:
		return glyphStarDim, colorStarDim
	default:
		return glyphStarVeryDim, colorStarVeryDim
	}
}
