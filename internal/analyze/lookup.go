package analyze

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/flixlens/flixlens/internal/catalog"
)

// idPattern is the required identifier shape: a lowercase "s" followed by
// one or more ASCII digits, with no surrounding whitespace.
var idPattern = regexp.MustCompile(`^s\d+$`)

// ErrNotFound reports a well-formed identifier with no matching title. It is
// a distinct condition from a malformed identifier.
var ErrNotFound = errors.New("title not found")

// InvalidIDError reports an identifier that does not match the required
// shape. It is never silently corrected.
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid title ID %q: expected 's' followed by a number, e.g. \"s1\"", e.ID)
}

// ValidateID checks an identifier's shape without touching the catalog.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return &InvalidIDError{ID: id}
	}
	return nil
}

// FindByID returns the first title in catalog order whose identifier equals
// id exactly. A malformed id yields an *InvalidIDError; a well-formed id
// with no match yields ErrNotFound.
func FindByID(c catalog.Catalog, id string) (*catalog.Title, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	for i := range c {
		if c[i].ID == id {
			return &c[i], nil
		}
	}
	return nil, ErrNotFound
}
