package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/litescript/ls-starchart/internal/astro"
)

func plain(w, h int, labels bool) Options {
	return Options{Width: w, Height: h, ShowLabels: labels, NoColor: true}
}

// canvasRows strips the frame and returns the inner canvas rows.
func canvasRows(out string) []string {
	lines := strings.Split(out, "\n")
	var rows []string
	for _, l := range lines {
		r := []rune(l)
		if len(r) < 2 || r[0] != '│' {
			continue
		}
		rows = append(rows, string(r[1:len(r)-1]))
	}
	return rows
}

func TestRender_Empty(t *testing.T) {
	rows := canvasRows(Render(nil, plain(20, 6, false)))
	if len(rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(rows))
	}
	for i, r := range rows {
		if strings.TrimSpace(r) != "" {
			t.Errorf("row %d should be blank, got %q", i, r)
		}
	}
}

func TestRender_PlacesStar(t *testing.T) {
	stars := []astro.Star{{Name: "Mid", RAHours: 12, DecDeg: 0, Mag: 0.5}}
	rows := canvasRows(Render(stars, plain(20, 10, false)))

	got := []rune(rows[5])[10]
	if got != glyphStarBright {
		t.Errorf("cell (10,5) = %q, want %q", got, glyphStarBright)
	}
}

func TestRender_RAIncreasesLeftward(t *testing.T) {
	stars := []astro.Star{
		{Name: "East", RAHours: 18, DecDeg: 0, Mag: 2},
		{Name: "West", RAHours: 6, DecDeg: 0, Mag: 2},
	}
	row := []rune(canvasRows(Render(stars, plain(24, 10, false)))[5])
	if row[6] != glyphStarMedium || row[18] != glyphStarMedium {
		t.Errorf("expected glyphs at columns 6 and 18, row = %q", string(row))
	}
}

func TestRender_BrighterStarWinsCell(t *testing.T) {
	stars := []astro.Star{
		{Name: "Faint", RAHours: 12, DecDeg: 0, Mag: 5},
		{Name: "Bright", RAHours: 12, DecDeg: 0, Mag: -1},
	}
	rows := canvasRows(Render(stars, plain(20, 10, true)))
	row := rows[5]
	if !strings.Contains(row, "Bright") {
		t.Errorf("expected Bright label, row = %q", row)
	}
	if strings.Contains(row, "Faint") {
		t.Errorf("faint star should lose the shared cell, row = %q", row)
	}
}

func TestRender_LabelsDoNotCoverStars(t *testing.T) {
	// Beta sits one cell left of Alpha, so its label would cover Alpha.
	stars := []astro.Star{
		{Name: "Alpha", RAHours: 12, DecDeg: 0, Mag: 1},
		{Name: "Beta", RAHours: 13, DecDeg: 0, Mag: 3},
	}
	row := canvasRows(Render(stars, plain(24, 10, true)))[5]
	if !strings.Contains(row, "Alpha") {
		t.Errorf("brighter label missing, row = %q", row)
	}
	if strings.Contains(row, "Beta") {
		t.Errorf("label covering a star should be dropped, row = %q", row)
	}
}

func TestRender_LabelsOff(t *testing.T) {
	stars := []astro.Star{{Name: "Vega", RAHours: 12, DecDeg: 0, Mag: 0}}
	out := Render(stars, plain(30, 10, false))
	if strings.Contains(out, "Vega") {
		t.Error("labels should not be drawn when disabled")
	}
}

func TestRender_TooSmall(t *testing.T) {
	out := Render(nil, plain(4, 2, false))
	if !strings.Contains(out, "larger canvas") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestStarGlyph(t *testing.T) {
	tests := []struct {
		mag  float64
		want rune
	}{
		{-1.46, glyphStarBright},
		{1.5, glyphStarMedium},
		{3.2, glyphStarDim},
		{5.8, glyphStarVeryDim},
	}
	for _, tt := range tests {
		if got, _ := starGlyph(tt.mag); got != tt.want {
			t.Errorf("starGlyph(%v) = %q, want %q", tt.mag, got, tt.want)
		}
	}
}

func TestWriteSummary(t *testing.T) {
	stars := []astro.Star{
		{Name: "Vega", RAHours: 18.6157, DecDeg: 38.784, Mag: 0.03},
		{Name: "Sirius", RAHours: 6.7525, DecDeg: -16.716, Mag: -1.46},
		{Name: "Polaris", RAHours: 2.5303, DecDeg: 89.264, Mag: 2.02},
	}

	var buf bytes.Buffer
	WriteSummary(&buf, "stars.csv", stars, 1, 2)
	out := buf.String()

	if !strings.Contains(out, "Catalogue: stars.csv") {
		t.Error("missing source line")
	}
	if strings.Index(out, "Sirius") > strings.Index(out, "Vega") {
		t.Error("rows should be ordered brightest first")
	}
	if strings.Contains(out, "Polaris") {
		t.Error("only the n brightest should be listed")
	}
	if !strings.Contains(out, "Total: 3 stars, 1 rows skipped") {
		t.Errorf("missing totals, got:\n%s", out)
	}
}

func TestWriteSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, "empty.csv", nil, 0, 10)
	if !strings.Contains(buf.String(), "No stars") {
		t.Errorf("got %q", buf.String())
	}
}

func TestTruncateStr(t *testing.T) {
	if got := truncateStr("Alpha Centauri", 8); got != "Alpha .." {
		t.Errorf("got %q", got)
	}
	if got := truncateStr("Vega", 8); got != "Vega" {
		t.Errorf("got %q", got)
	}
}
