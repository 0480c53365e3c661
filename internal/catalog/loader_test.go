package catalog

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const catalogHeader = "show_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in,description\n"

func TestLoad_PreservesOrderAndTrimsFields(t *testing.T) {
	t.Parallel()
	input := catalogHeader +
		"s1,Movie,  Inception  , Christopher Nolan ,Leonardo DiCaprio,United States,\"January 1, 2020\",2010,PG-13,148 min,Thrillers,A heist in dreams.\n" +
		"s2,TV Show,Dark,Baran bo Odar,Louis Hofmann,Germany,\"December 1, 2017\",2017,TV-MA,3 Seasons,Sci-Fi,Time travel in Winden.\n"

	titles, diagnostics, err := Load(strings.NewReader(input), Options{})
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if len(diagnostics) != 0 {
		t.Errorf("Load() diagnostics = %v, want none", diagnostics)
	}

	want := Catalog{
		{
			ID: "s1", Kind: KindMovie, Name: "Inception", Director: "Christopher Nolan",
			Cast: "Leonardo DiCaprio", Country: "United States", DateAdded: "January 1, 2020",
			ReleaseYear: 2010, Rating: "PG-13", Duration: "148 min", Genres: "Thrillers",
			Description: "A heist in dreams.",
		},
		{
			ID: "s2", Kind: KindSeries, Name: "Dark", Director: "Baran bo Odar",
			Cast: "Louis Hofmann", Country: "Germany", DateAdded: "December 1, 2017",
			ReleaseYear: 2017, Rating: "TV-MA", Duration: "3 Seasons", Genres: "Sci-Fi",
			Description: "Time travel in Winden.",
		},
	}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_SkipsShortRows(t *testing.T) {
	t.Parallel()
	input := catalogHeader +
		"s1,Movie,Short Row\n" +
		"s2,Movie,Full,d,c,US,\"January 1, 2020\",2020,PG,90 min,Drama,ok\n"

	titles, diagnostics, err := Load(strings.NewReader(input), Options{})
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if len(titles) != 1 || titles[0].ID != "s2" {
		t.Errorf("Load() titles = %v, want only s2", titles)
	}
	if len(diagnostics) != 1 {
		t.Fatalf("Load() diagnostics = %v, want one", diagnostics)
	}
	if diagnostics[0].Reason != ReasonRowSkipped || diagnostics[0].Line != 2 {
		t.Errorf("Load() diagnostic = %+v, want row_skipped at line 2", diagnostics[0])
	}
}

func TestLoad_YearParseFailurePolicies(t *testing.T) {
	t.Parallel()
	input := catalogHeader +
		"s1,Movie,Bad Year,d,c,US,\"January 1, 2020\",twenty-twenty,PG,90 min,Drama,ok\n"

	t.Run("default_to_zero", func(t *testing.T) {
		t.Parallel()
		titles, diagnostics, err := Load(strings.NewReader(input), Options{OnParseError: DefaultToZero})
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}
		if len(titles) != 1 || titles[0].ReleaseYear != 0 {
			t.Errorf("Load() titles = %v, want one title with year 0", titles)
		}
		if len(diagnostics) != 1 || diagnostics[0].Reason != ReasonFieldDefaulted {
			t.Errorf("Load() diagnostics = %v, want one field_defaulted", diagnostics)
		}
	})

	t.Run("skip_row", func(t *testing.T) {
		t.Parallel()
		titles, diagnostics, err := Load(strings.NewReader(input), Options{OnParseError: SkipRow})
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}
		if len(titles) != 0 {
			t.Errorf("Load() titles = %v, want none", titles)
		}
		if len(diagnostics) != 1 || diagnostics[0].Reason != ReasonRowSkipped {
			t.Errorf("Load() diagnostics = %v, want one row_skipped", diagnostics)
		}
	})
}

func TestLoad_EmptyYearIsNotAFailure(t *testing.T) {
	t.Parallel()
	input := catalogHeader +
		"s1,Movie,No Year,d,c,US,\"January 1, 2020\",,PG,90 min,Drama,ok\n"

	titles, diagnostics, err := Load(strings.NewReader(input), Options{})
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if len(diagnostics) != 0 {
		t.Errorf("Load() diagnostics = %v, want none", diagnostics)
	}
	if len(titles) != 1 || titles[0].ReleaseYear != 0 {
		t.Errorf("Load() titles = %v, want one title with year 0", titles)
	}
}

func TestLoad_EmptyDurationBecomesNA(t *testing.T) {
	t.Parallel()
	input := catalogHeader +
		"s1,Movie,No Duration,d,c,US,\"January 1, 2020\",2020,PG,,Drama,ok\n"

	titles, _, err := Load(strings.NewReader(input), Options{})
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if titles[0].Duration != "N/A" {
		t.Errorf("Duration = %q, want %q", titles[0].Duration, "N/A")
	}
}

func TestLoad_QuotedFieldsWithDelimiterAndNewline(t *testing.T) {
	t.Parallel()
	input := catalogHeader +
		"s1,Movie,\"Comma, The Movie\",d,c,\"United States\",\"January 1, 2020\",2020,PG,90 min,Drama,\"Line one\nline two\"\n"

	titles, _, err := Load(strings.NewReader(input), Options{})
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if titles[0].Name != "Comma, The Movie" {
		t.Errorf("Name = %q, want embedded comma preserved", titles[0].Name)
	}
	if titles[0].Description != "Line one\nline two" {
		t.Errorf("Description = %q, want embedded newline preserved", titles[0].Description)
	}
}

func TestLoad_StrictAbortsOnFirstProblem(t *testing.T) {
	t.Parallel()
	input := catalogHeader +
		"s1,Movie,Short Row\n" +
		"s2,Movie,Full,d,c,US,\"January 1, 2020\",2020,PG,90 min,Drama,ok\n"

	titles, diagnostics, err := Load(strings.NewReader(input), Options{Strict: true})
	if err == nil {
		t.Fatal("Load() error = nil, want strict abort")
	}
	if titles != nil || diagnostics != nil {
		t.Errorf("Load() = (%v, %v), want no partial catalog in strict mode", titles, diagnostics)
	}
}

func TestLoad_EmptySourceIsEmptyCatalog(t *testing.T) {
	t.Parallel()
	titles, diagnostics, err := Load(strings.NewReader(""), Options{})
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if len(titles) != 0 || len(diagnostics) != 0 {
		t.Errorf("Load() = (%v, %v), want empty catalog", titles, diagnostics)
	}
}

func TestLoad_HeaderOnlyIsEmptyCatalog(t *testing.T) {
	t.Parallel()
	titles, diagnostics, err := Load(strings.NewReader(catalogHeader), Options{})
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if len(titles) != 0 || len(diagnostics) != 0 {
		t.Errorf("Load() = (%v, %v), want empty catalog", titles, diagnostics)
	}
}

func TestLoadFile_MissingSourceIsFatal(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing.csv")
	titles, diagnostics, err := LoadFile(path, Options{})
	if err == nil {
		t.Fatal("LoadFile() error = nil, want open failure")
	}
	if titles != nil || diagnostics != nil {
		t.Errorf("LoadFile() = (%v, %v), want no partial catalog", titles, diagnostics)
	}
}

func TestParseParseErrorPolicy(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    ParseErrorPolicy
		wantErr bool
	}{
		{"default_to_zero", DefaultToZero, false},
		{"default-to-zero", DefaultToZero, false},
		{"skip_row", SkipRow, false},
		{"SKIP_ROW", SkipRow, false},
		{"", DefaultToZero, false},
		{"abort", DefaultToZero, true},
	}
	for _, tc := range tests {
		got, err := ParseParseErrorPolicy(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseParseErrorPolicy(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseParseErrorPolicy(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
