package analyze

import (
	"testing"

	"github.com/flixlens/flixlens/internal/catalog"
)

func titlesWithCountries(countries ...string) catalog.Catalog {
	c := make(catalog.Catalog, 0, len(countries))
	for i, country := range countries {
		c = append(c, catalog.Title{ID: "s" + string(rune('1'+i)), Country: country})
	}
	return c
}

func TestMostCommonCountry(t *testing.T) {
	t.Parallel()

	// Placeholder and empty values never count, even when they dominate.
	c := catalog.Catalog{}
	for i := 0; i < 5; i++ {
		c = append(c, catalog.Title{Country: "United States"})
	}
	for i := 0; i < 3; i++ {
		c = append(c, catalog.Title{Country: "India"})
	}
	for i := 0; i < 10; i++ {
		c = append(c, catalog.Title{Country: "Unknown"})
	}
	for i := 0; i < 2; i++ {
		c = append(c, catalog.Title{Country: ""})
	}

	if got := MostCommonCountry(c); got != "United States" {
		t.Errorf("MostCommonCountry() = %q, want %q", got, "United States")
	}
}

func TestMostCommonCountry_ExcludesWhitespaceOnly(t *testing.T) {
	t.Parallel()
	c := titlesWithCountries("   ", "\t", "Japan")
	if got := MostCommonCountry(c); got != "Japan" {
		t.Errorf("MostCommonCountry() = %q, want %q", got, "Japan")
	}
}

func TestMostCommonCountry_TieBreaksByCatalogOrder(t *testing.T) {
	t.Parallel()
	c := titlesWithCountries("India", "United States", "United States", "India")
	if got := MostCommonCountry(c); got != "India" {
		t.Errorf("MostCommonCountry() = %q, want first-encountered %q on a tie", got, "India")
	}
}

func TestMostCommonCountry_NoQualifyingCountry(t *testing.T) {
	t.Parallel()
	c := titlesWithCountries("", "Unknown", "  ")
	if got := MostCommonCountry(c); got != UnknownCountry {
		t.Errorf("MostCommonCountry() = %q, want %q", got, UnknownCountry)
	}
	if got := MostCommonCountry(catalog.Catalog{}); got != UnknownCountry {
		t.Errorf("MostCommonCountry(empty) = %q, want %q", got, UnknownCountry)
	}
}

func TestMostCommonCountry_Idempotent(t *testing.T) {
	t.Parallel()
	c := titlesWithCountries("Japan", "Japan", "France")
	first := MostCommonCountry(c)
	second := MostCommonCountry(c)
	if first != second {
		t.Errorf("MostCommonCountry() not stable: %q then %q", first, second)
	}
}
