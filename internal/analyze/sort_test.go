package analyze

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/flixlens/flixlens/internal/catalog"
)

func sortFixture() catalog.Catalog {
	return catalog.Catalog{
		{ID: "s1", Name: "Later", DateAdded: "January 1, 2020"},
		{ID: "s2", Name: "Earlier", DateAdded: "March 5, 2019"},
		{ID: "s3", Name: "Mystery", DateAdded: "not a date"},
	}
}

func idsOf(c catalog.Catalog) []string {
	ids := make([]string, 0, len(c))
	for _, t := range c {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestSortByDateAdded_Ascending(t *testing.T) {
	t.Parallel()
	got := idsOf(SortByDateAdded(sortFixture(), true))
	want := []string{"s2", "s1", "s3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortByDateAdded(asc) order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortByDateAdded_DescendingKeepsUnknownLast(t *testing.T) {
	t.Parallel()
	got := idsOf(SortByDateAdded(sortFixture(), false))
	want := []string{"s1", "s2", "s3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortByDateAdded(desc) order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortByDateAdded_UnknownsKeepRelativeOrder(t *testing.T) {
	t.Parallel()
	c := catalog.Catalog{
		{ID: "s1", DateAdded: "garbage"},
		{ID: "s2", DateAdded: "January 1, 2020"},
		{ID: "s3", DateAdded: "also garbage"},
	}
	got := idsOf(SortByDateAdded(c, true))
	want := []string{"s2", "s1", "s3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortByDateAdded() unknown ordering mismatch (-want +got):\n%s", diff)
	}
}

func TestSortByDateAdded_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	c := sortFixture()
	SortByDateAdded(c, true)
	if diff := cmp.Diff(sortFixture(), c); diff != "" {
		t.Errorf("SortByDateAdded() mutated its input (-want +got):\n%s", diff)
	}
}

func TestSortByDateAdded_Idempotent(t *testing.T) {
	t.Parallel()
	once := SortByDateAdded(sortFixture(), true)
	twice := SortByDateAdded(once, true)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("SortByDateAdded() applied twice is not a no-op (-want +got):\n%s", diff)
	}
}
