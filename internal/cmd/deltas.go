package cmd

import (
	"fmt"

	"github.com/flixlens/flixlens/internal/analyze"
	"github.com/flixlens/flixlens/internal/log"
	"github.com/spf13/cobra"
)

var deltasCmd = &cobra.Command{
	Use:   "deltas",
	Short: "List release-to-addition day deltas for every title",
	Long: `List, for every title, the number of days between January 1 of its
release year and the date it entered the catalog. Titles whose addition
date cannot be parsed, or whose release year is unset, print "unknown"
instead of a day count.`,
	RunE: runDeltasCommand,
}

func runDeltasCommand(cmd *cobra.Command, args []string) error {
	titles, diagnostics, err := loadCatalog("deltas", args)
	if err != nil {
		return err
	}
	defer log.EndSession()
	reportDiagnostics(diagnostics)

	for _, summary := range analyze.DeltaSummaries(titles) {
		fmt.Println(summary)
	}
	log.LogQuery("release_addition_deltas", fmt.Sprintf("%d titles", len(titles)))
	return nil
}

func init() {
	rootCmd.AddCommand(deltasCmd)
}
