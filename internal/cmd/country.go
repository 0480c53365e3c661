package cmd

import (
	"fmt"

	"github.com/flixlens/flixlens/internal/analyze"
	"github.com/flixlens/flixlens/internal/log"
	"github.com/spf13/cobra"
)

var countryCmd = &cobra.Command{
	Use:   "country",
	Short: "Show the country with the most titles",
	Long: `Show the production country that appears on the most titles.

Titles with an empty country or the "Unknown" placeholder are excluded
from counting. When no title carries a usable country, "Unknown" is
printed.`,
	RunE: runCountryCommand,
}

func runCountryCommand(cmd *cobra.Command, args []string) error {
	titles, diagnostics, err := loadCatalog("country", args)
	if err != nil {
		return err
	}
	defer log.EndSession()
	reportDiagnostics(diagnostics)

	country := analyze.MostCommonCountry(titles)
	log.LogQuery("most_common_country", country)
	fmt.Printf("Country with most titles: %s\n", country)
	return nil
}

func init() {
	rootCmd.AddCommand(countryCmd)
}
