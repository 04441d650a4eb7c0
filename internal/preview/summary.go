package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/litescript/ls-starchart/internal/astro"
)

// WriteSummary writes a plain-text table of the n brightest stars.
func WriteSummary(w io.Writer, source string, stars []astro.Star, skipped, n int) {
	fmt.Fprintf(w, "Catalogue: %s\n", source)
	fmt.Fprintln(w, strings.Repeat("─", 52))

	if len(stars) == 0 {
		fmt.Fprintln(w, "No stars")
		return
	}

	fmt.Fprintf(w, "%-20s %10s %10s %8s\n", "Name", "RA (h)", "Dec (°)", "Mag")
	fmt.Fprintln(w, strings.Repeat("─", 52))

	for _, s := range astro.Brightest(stars, n) {
		fmt.Fprintf(w, "%-20s %10.4f %+10.3f %8.2f\n",
			truncateStr(s.Name, 20), s.RAHours, s.DecDeg, s.Mag)
	}

	fmt.Fprintf(w, "\nTotal: %d stars", len(stars))
	if skipped > 0 {
		fmt.Fprintf(w, ", %d rows skipped", skipped)
	}
	fmt.Fprintln(w)
}

func truncateStr(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-2]) + ".."
}
