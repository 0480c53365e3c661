package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSV loading for the fixed catalog schema.
//
// The schema is twelve columns in a fixed order: identifier, kind, title,
// director, cast, country, date added, release year, rating, duration,
// genres, description. The first row is a header and is discarded unread.
// A row carrying fewer than twelve fields cannot populate the full schema
// and is structurally invalid; the loader skips it rather than guessing at
// positions.

// schemaFieldCount is the minimum number of columns a row must carry.
const schemaFieldCount = 12

// ParseErrorPolicy governs what happens when a field fails semantic parsing
// (currently only the release year). Exactly one policy applies to a load;
// behaviors are never mixed within a single load.
type ParseErrorPolicy int

const (
	// DefaultToZero records a diagnostic and keeps the row with the
	// field zeroed. This is the default (lenient) policy.
	DefaultToZero ParseErrorPolicy = iota
	// SkipRow records a diagnostic and drops the whole row.
	SkipRow
)

// ParseParseErrorPolicy resolves a config/flag string to a policy.
func ParseParseErrorPolicy(raw string) (ParseErrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "default_to_zero", "default-to-zero":
		return DefaultToZero, nil
	case "skip_row", "skip-row":
		return SkipRow, nil
	default:
		return DefaultToZero, fmt.Errorf("unknown parse error policy %q (want default_to_zero or skip_row)", raw)
	}
}

// String returns the config spelling of the policy.
func (p ParseErrorPolicy) String() string {
	if p == SkipRow {
		return "skip_row"
	}
	return "default_to_zero"
}

// Options configures a single load.
type Options struct {
	// OnParseError selects the field parse failure policy.
	OnParseError ParseErrorPolicy
	// Strict escalates every diagnostic to a load-aborting error. No
	// partial catalog is returned in strict mode.
	Strict bool
}

// DiagnosticReason classifies a load diagnostic.
type DiagnosticReason string

const (
	// ReasonRowSkipped marks a structurally invalid row (too few fields)
	// or a row dropped under the SkipRow policy.
	ReasonRowSkipped DiagnosticReason = "row_skipped"
	// ReasonFieldDefaulted marks a release year that failed to parse and
	// was zeroed under the DefaultToZero policy.
	ReasonFieldDefaulted DiagnosticReason = "field_defaulted"
)

// Diagnostic records one recovered problem from a load. Diagnostics never
// imply a partial row made it into the catalog: a row is either loaded whole
// (possibly with a defaulted year) or skipped whole.
type Diagnostic struct {
	Line    int              `json:"line"`
	Reason  DiagnosticReason `json:"reason"`
	Message string           `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s: %s", d.Line, d.Reason, d.Message)
}

// LoadFile opens path and loads the catalog from it. A file that cannot be
// opened is fatal: the error is returned and no catalog is produced.
func LoadFile(path string, opts Options) (Catalog, []Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog source: %w", err)
	}
	defer f.Close()
	return Load(f, opts)
}

// Load reads the fixed-schema CSV from r and returns the catalog in input
// row order, together with the diagnostics recovered along the way. Under
// Options.Strict the first diagnostic aborts the load instead.
func Load(r io.Reader, opts Options) (Catalog, []Diagnostic, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	// Header row is discarded unread. An empty source is a valid empty
	// catalog, not an error.
	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return Catalog{}, nil, nil
		}
		return nil, nil, fmt.Errorf("read catalog header: %w", err)
	}

	var (
		titles      Catalog
		diagnostics []Diagnostic
		line        = 1
	)

	report := func(d Diagnostic) error {
		if opts.Strict {
			return fmt.Errorf("strict load: %s", d)
		}
		diagnostics = append(diagnostics, d)
		return nil
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, nil, fmt.Errorf("read catalog row: %w", err)
			}
			// Quoting damage is confined to the row; skip it and
			// keep reading.
			d := Diagnostic{
				Line:    parseErr.Line,
				Reason:  ReasonRowSkipped,
				Message: fmt.Sprintf("malformed row: %v", parseErr.Err),
			}
			if err := report(d); err != nil {
				return nil, nil, err
			}
			continue
		}

		if len(row) < schemaFieldCount {
			d := Diagnostic{
				Line:    line,
				Reason:  ReasonRowSkipped,
				Message: fmt.Sprintf("row has %d fields, want %d", len(row), schemaFieldCount),
			}
			if err := report(d); err != nil {
				return nil, nil, err
			}
			continue
		}

		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}

		releaseYear := 0
		if yearStr := row[7]; yearStr != "" {
			releaseYear, err = strconv.Atoi(yearStr)
			if err != nil {
				d := Diagnostic{
					Line:   line,
					Reason: ReasonFieldDefaulted,
					Message: fmt.Sprintf("release year %q is not numeric (policy %s)",
						yearStr, opts.OnParseError),
				}
				if opts.OnParseError == SkipRow {
					d.Reason = ReasonRowSkipped
				}
				if err := report(d); err != nil {
					return nil, nil, err
				}
				if opts.OnParseError == SkipRow {
					continue
				}
				releaseYear = 0
			}
		}

		duration := row[9]
		if duration == "" {
			duration = "N/A"
		}

		titles = append(titles, Title{
			ID:          row[0],
			Kind:        ParseKind(row[1]),
			Name:        row[2],
			Director:    row[3],
			Cast:        row[4],
			Country:     row[5],
			DateAdded:   row[6],
			ReleaseYear: releaseYear,
			Rating:      row[8],
			Duration:    duration,
			Genres:      row[10],
			Description: row[11],
		})
	}

	if titles == nil {
		titles = Catalog{}
	}
	return titles, diagnostics, nil
}
