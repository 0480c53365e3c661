package cmd

import (
	"fmt"

	"github.com/flixlens/flixlens/internal/catalog"
	"github.com/flixlens/flixlens/internal/config"
	"github.com/flixlens/flixlens/internal/log"
)

// loadCatalog resolves configuration and flags, loads the catalog, and
// records the load in the session log. Flags win over persisted config.
// Every command goes through here so a single load policy applies to the
// whole run.
func loadCatalog(commandName string, args []string) (catalog.Catalog, []catalog.Diagnostic, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	path := cfg.CSVPath
	if csvPath != "" {
		path = csvPath
	}

	opts, err := cfg.LoaderOptions()
	if err != nil {
		return nil, nil, err
	}
	if strictLoad {
		opts.Strict = true
	}
	if onParseError != "" {
		policy, err := catalog.ParseParseErrorPolicy(onParseError)
		if err != nil {
			return nil, nil, err
		}
		opts.OnParseError = policy
	}

	log.Initialize(cfg.EnableLogging && !noLog, cfg.LogRetentionDays)
	if err := log.StartSession(commandName, args, path); err != nil {
		fmt.Printf("Warning: could not start log session: %v\n", err)
	}

	titles, diagnostics, err := catalog.LoadFile(path, opts)
	if err != nil {
		return nil, nil, err
	}

	skipped := 0
	for _, d := range diagnostics {
		switch d.Reason {
		case catalog.ReasonRowSkipped:
			skipped++
			log.LogRowSkipped(d.Line, d.Message)
		case catalog.ReasonFieldDefaulted:
			log.LogFieldDefaulted(d.Line, d.Message)
		}
	}
	log.LogLoad(path, len(titles), skipped)

	return titles, diagnostics, nil
}

// reportDiagnostics prints recovered load problems without failing the
// command.
func reportDiagnostics(diagnostics []catalog.Diagnostic) {
	for _, d := range diagnostics {
		fmt.Printf("Warning: %s\n", d)
	}
}
