package analyze

import (
	"strings"

	"github.com/flixlens/flixlens/internal/catalog"
)

// UnknownCountry is both the placeholder excluded from counting and the
// result when no title carries a usable country.
const UnknownCountry = "Unknown"

// MostCommonCountry returns the production country appearing on the most
// titles. Titles whose country is empty, whitespace-only, or the literal
// "Unknown" placeholder are excluded from counting. Ties resolve to the
// country that appears first in catalog order, which keeps repeated calls on
// the same catalog stable. When no country qualifies, the "Unknown"
// placeholder is returned.
func MostCommonCountry(c catalog.Catalog) string {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, t := range c {
		country := t.Country
		if strings.TrimSpace(country) == "" || country == UnknownCountry {
			continue
		}
		if _, seen := counts[country]; !seen {
			order = append(order, country)
		}
		counts[country]++
	}

	best := UnknownCountry
	bestCount := 0
	for _, country := range order {
		if counts[country] > bestCount {
			best = country
			bestCount = counts[country]
		}
	}
	return best
}
