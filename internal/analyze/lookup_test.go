package analyze

import (
	"errors"
	"testing"

	"github.com/flixlens/flixlens/internal/catalog"
)

func lookupFixture() catalog.Catalog {
	return catalog.Catalog{
		{ID: "s1", Name: "First"},
		{ID: "s2", Name: "Second"},
		{ID: "s2", Name: "Duplicate"},
	}
}

func TestFindByID_InvalidFormats(t *testing.T) {
	t.Parallel()
	c := lookupFixture()
	invalid := []string{"", "1", "S1", "s", "s1x", " s1", "s1 ", "sabc", "movie1"}
	for _, id := range invalid {
		title, err := FindByID(c, id)
		if title != nil {
			t.Errorf("FindByID(%q) returned a title, want nil", id)
		}
		var invalidErr *InvalidIDError
		if !errors.As(err, &invalidErr) {
			t.Errorf("FindByID(%q) error = %v, want *InvalidIDError", id, err)
		}
	}
}

func TestFindByID_Found(t *testing.T) {
	t.Parallel()
	title, err := FindByID(lookupFixture(), "s1")
	if err != nil {
		t.Fatalf("FindByID(s1) error = %v, want nil", err)
	}
	if title.Name != "First" {
		t.Errorf("FindByID(s1).Name = %q, want %q", title.Name, "First")
	}
}

func TestFindByID_FirstMatchWinsOnDuplicates(t *testing.T) {
	t.Parallel()
	title, err := FindByID(lookupFixture(), "s2")
	if err != nil {
		t.Fatalf("FindByID(s2) error = %v, want nil", err)
	}
	if title.Name != "Second" {
		t.Errorf("FindByID(s2).Name = %q, want first occurrence %q", title.Name, "Second")
	}
}

func TestFindByID_NotFound(t *testing.T) {
	t.Parallel()
	title, err := FindByID(lookupFixture(), "s999")
	if title != nil {
		t.Errorf("FindByID(s999) returned a title, want nil")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID(s999) error = %v, want ErrNotFound", err)
	}
	var invalidErr *InvalidIDError
	if errors.As(err, &invalidErr) {
		t.Error("FindByID(s999) reported a format error; not-found must stay distinct")
	}
}

func TestIndex_MatchesLinearScan(t *testing.T) {
	t.Parallel()
	c := lookupFixture()
	idx := NewIndex(c)

	for _, id := range []string{"s1", "s2", "s999", "bogus"} {
		wantTitle, wantErr := FindByID(c, id)
		gotTitle, gotErr := idx.FindByID(id)

		switch {
		case wantErr != nil:
			if gotErr == nil || wantErr.Error() != gotErr.Error() {
				t.Errorf("Index.FindByID(%q) error = %v, want %v", id, gotErr, wantErr)
			}
		case gotErr != nil:
			t.Errorf("Index.FindByID(%q) error = %v, want nil", id, gotErr)
		case wantTitle.Name != gotTitle.Name:
			t.Errorf("Index.FindByID(%q) = %q, want %q", id, gotTitle.Name, wantTitle.Name)
		}
	}
}
