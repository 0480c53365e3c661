package catalog

import "strings"

// Kind categorizes a catalog entry as either a standalone movie or an
// episodic series.
type Kind int

const (
	KindMovie Kind = iota
	KindSeries
)

// kindNames maps each Kind to the display name used in catalog exports.
var kindNames = map[Kind]string{
	KindMovie:  "Movie",
	KindSeries: "TV Show",
}

// String returns the display name for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindMovie]
}

// ParseKind interprets a raw kind field. Matching is case-insensitive and a
// single embedded space is treated as an underscore, so "TV Show", "tv_show"
// and "Series" all resolve to KindSeries. Unrecognized values resolve to
// KindMovie.
func ParseKind(raw string) Kind {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.Replace(normalized, " ", "_", 1)
	switch normalized {
	case "series", "tv_show", "tv_series":
		return KindSeries
	default:
		return KindMovie
	}
}

// Title is one catalog entry. All fields are plain values; a Title is never
// mutated after the loader constructs it.
type Title struct {
	// ID is the catalog identifier, "s" followed by digits (e.g. "s1").
	// Uniqueness is not enforced; duplicates coexist and lookups return
	// the first match in catalog order.
	ID       string
	Kind     Kind
	Name     string
	Director string
	Cast     string
	Country  string
	// DateAdded is the raw addition date in the "January 2, 2006" layout.
	// It may not parse; callers treat that as an expected condition.
	DateAdded string
	// ReleaseYear is 0 when the source field was empty or unparseable
	// under the default-to-zero policy.
	ReleaseYear int
	Rating      string
	// Duration holds the literal "N/A" when the source field was empty.
	Duration    string
	Genres      string
	Description string
}

// Catalog is the ordered, immutable-after-load sequence of all titles.
// Order matches the input file unless explicitly re-sorted.
type Catalog []Title
