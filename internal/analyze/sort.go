package analyze

import (
	"sort"

	"github.com/flixlens/flixlens/internal/catalog"
)

// SortByDateAdded returns a new catalog ordered chronologically by addition
// date. The input catalog and its titles are left untouched. Titles whose
// addition date does not parse sort after every parseable date regardless of
// direction; among themselves they keep their relative order. The sort is
// stable, so re-applying it with the same flag is a no-op reordering.
func SortByDateAdded(c catalog.Catalog, ascending bool) catalog.Catalog {
	sorted := make(catalog.Catalog, len(c))
	copy(sorted, c)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, iOK := parseDateAdded(sorted[i].DateAdded)
		dj, jOK := parseDateAdded(sorted[j].DateAdded)

		// Unknown dates always sink to the bottom.
		if iOK != jOK {
			return iOK
		}
		if !iOK {
			return false
		}
		if ascending {
			return di.Before(dj)
		}
		return dj.Before(di)
	})

	return sorted
}
