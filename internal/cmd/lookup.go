package cmd

import (
	"errors"
	"fmt"

	"github.com/flixlens/flixlens/internal/analyze"
	"github.com/flixlens/flixlens/internal/log"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <id>",
	Short: "Show one title by its identifier",
	Long: `Look up a single title by its catalog identifier ("s" followed by a
number, e.g. "s1") and print its details along with the release-to-
addition day delta.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookupCommand,
}

func runLookupCommand(cmd *cobra.Command, args []string) error {
	titles, diagnostics, err := loadCatalog("lookup", args)
	if err != nil {
		return err
	}
	defer log.EndSession()
	reportDiagnostics(diagnostics)

	id := args[0]
	title, err := analyze.FindByID(titles, id)
	log.LogLookup(id, err)
	if err != nil {
		if errors.Is(err, analyze.ErrNotFound) {
			// A missing title is an empty result, not a usage error.
			fmt.Printf("No title with ID %s\n", id)
			return nil
		}
		return err
	}

	fmt.Println(renderTable(
		[]string{"Field", "Value"},
		[][]string{
			{"ID", title.ID},
			{"Kind", title.Kind.String()},
			{"Title", title.Name},
			{"Director", title.Director},
			{"Cast", title.Cast},
			{"Country", title.Country},
			{"Date Added", title.DateAdded},
			{"Release Year", fmt.Sprintf("%d", title.ReleaseYear)},
			{"Rating", title.Rating},
			{"Duration", title.Duration},
			{"Genres", title.Genres},
			{"Description", title.Description},
			{"Release to Addition", analyze.FormatDelta(analyze.ReleaseAdditionDelta(*title))},
		},
		[]columnAlignment{alignLeft, alignLeft},
	))
	return nil
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
