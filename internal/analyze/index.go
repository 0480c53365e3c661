package analyze

import (
	"github.com/mhmtszr/concurrent-swiss-map"

	"github.com/flixlens/flixlens/internal/catalog"
)

// Index accelerates repeated identifier lookups over one catalog snapshot.
// It preserves FindByID semantics exactly: when duplicate identifiers exist,
// the first occurrence in catalog order wins. The backing map is safe for
// concurrent readers, matching the catalog's read-only concurrency model.
type Index struct {
	titles *csmap.CsMap[string, *catalog.Title]
}

// NewIndex builds a first-occurrence index over c. The catalog must not be
// reloaded while the index is in use; build a fresh index per snapshot.
func NewIndex(c catalog.Catalog) *Index {
	idx := &Index{titles: csmap.Create[string, *catalog.Title]()}
	for i := range c {
		if _, exists := idx.titles.Load(c[i].ID); exists {
			continue
		}
		idx.titles.Store(c[i].ID, &c[i])
	}
	return idx
}

// FindByID behaves like the package-level FindByID but in O(1) per lookup.
func (idx *Index) FindByID(id string) (*catalog.Title, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	if t, ok := idx.titles.Load(id); ok {
		return t, nil
	}
	return nil, ErrNotFound
}
