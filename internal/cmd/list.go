package cmd

import (
	"fmt"
	"strconv"

	"github.com/flixlens/flixlens/internal/analyze"
	"github.com/flixlens/flixlens/internal/catalog"
	"github.com/flixlens/flixlens/internal/log"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog as a table",
	Long: `Print every title in the catalog as a table.

By default titles appear in source file order. With --by-date-added the
catalog is ordered chronologically by the date each title entered the
catalog; titles whose addition date cannot be parsed always sort last.`,
	RunE: runListCommand,
}

var (
	byDateAdded bool
	descending  bool
)

func runListCommand(cmd *cobra.Command, args []string) error {
	titles, diagnostics, err := loadCatalog("list", args)
	if err != nil {
		return err
	}
	defer log.EndSession()
	reportDiagnostics(diagnostics)

	if byDateAdded {
		titles = analyze.SortByDateAdded(titles, !descending)
		log.LogQuery("sort_by_date_added", fmt.Sprintf("descending=%v", descending))
	}

	fmt.Println(renderTable(
		[]string{"ID", "Kind", "Title", "Country", "Year", "Date Added", "Rating", "Duration"},
		titleRows(titles),
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignLeft},
	))
	return nil
}

func titleRows(titles catalog.Catalog) [][]string {
	rows := make([][]string, 0, len(titles))
	for _, t := range titles {
		year := ""
		if t.ReleaseYear != 0 {
			year = strconv.Itoa(t.ReleaseYear)
		}
		rows = append(rows, []string{
			t.ID, t.Kind.String(), t.Name, t.Country, year, t.DateAdded, t.Rating, t.Duration,
		})
	}
	return rows
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&byDateAdded, "by-date-added", false, "Order titles by catalog addition date")
	listCmd.Flags().BoolVar(&descending, "desc", false, "Reverse the date ordering (newest first)")
}
