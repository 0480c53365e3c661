package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/flixlens/flixlens/internal/config"
	"github.com/flixlens/flixlens/internal/log"
	"github.com/flixlens/flixlens/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [id]",
	Short: "Browse the catalog interactively",
	Long: `Open the catalog in an interactive terminal UI: a scrolling title
table, the most-common-country query, per-title release-to-addition day
deltas, and chronological sorting by addition date.

An optional identifier argument pre-populates the lookup field and runs
the lookup at startup.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowseCommand,
}

func runBrowseCommand(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("browse needs a terminal; use list, country, deltas, or lookup instead")
	}

	titles, diagnostics, err := loadCatalog("browse", args)
	if err != nil {
		return err
	}
	defer log.EndSession()
	reportDiagnostics(diagnostics)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := []tui.Option{}
	if cfg.DateDescending {
		opts = append(opts, tui.WithDescendingFirst())
	}
	if len(args) > 0 {
		opts = append(opts, tui.WithInitialID(args[0]))
	}

	model := tui.NewBrowseModel(titles, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
