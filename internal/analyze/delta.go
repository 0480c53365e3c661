package analyze

import (
	"fmt"
	"math"
	"time"

	"github.com/flixlens/flixlens/internal/catalog"
)

// UnknownDelta is the sentinel returned when a release-to-addition delta
// cannot be computed, either because the addition date fails to parse or
// because the release year is unset. It is the one place the analyzer
// substitutes a value instead of surfacing an error; callers must treat it
// as "unknown" and never fold it into aggregate statistics.
const UnknownDelta int64 = math.MaxInt64

// ReleaseAdditionDelta returns the number of days from January 1 of the
// title's release year to its catalog-addition date. The result is negative
// when the title was added before January 1 of its release year. Returns
// UnknownDelta when the addition date is unparseable or the release year
// is 0.
func ReleaseAdditionDelta(t catalog.Title) int64 {
	if t.ReleaseYear == 0 {
		return UnknownDelta
	}
	added, ok := parseDateAdded(t.DateAdded)
	if !ok {
		return UnknownDelta
	}
	release := time.Date(t.ReleaseYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	return int64(added.Sub(release).Hours() / 24)
}

// DeltaSummaries renders one "Name: N days" line per title in catalog order.
// Titles with an unknown delta render as "Name: unknown" instead of leaking
// the sentinel value.
func DeltaSummaries(c catalog.Catalog) []string {
	summaries := make([]string, 0, len(c))
	for _, t := range c {
		summaries = append(summaries, fmt.Sprintf("%s: %s", t.Name, FormatDelta(ReleaseAdditionDelta(t))))
	}
	return summaries
}

// FormatDelta renders a delta for display, mapping the sentinel to
// "unknown".
func FormatDelta(delta int64) string {
	if delta == UnknownDelta {
		return "unknown"
	}
	return fmt.Sprintf("%d days", delta)
}
