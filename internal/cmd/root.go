package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flixlens",
	Short: "Explore a media title catalog from the terminal",
	Long: `flixlens loads a fixed-schema CSV catalog of movies and TV shows and
answers aggregate questions about it: which country produces the most
titles, how long each title took to reach the catalog after release, and
what the catalog looks like ordered by addition date.

Results render as plain tables for scripting or in an interactive
terminal UI for browsing.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var (
	csvPath      string
	strictLoad   bool
	onParseError string
	noLog        bool
)

func init() {
	// Global flags for all commands
	rootCmd.PersistentFlags().StringVar(&csvPath, "csv", "", "Path to the catalog CSV (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&strictLoad, "strict", false, "Abort the load on the first malformed row or field")
	rootCmd.PersistentFlags().StringVar(&onParseError, "on-parse-error", "", "Field parse failure policy: default_to_zero or skip_row")
	rootCmd.PersistentFlags().BoolVar(&noLog, "no-log", false, "Disable session diagnostics logging")
}
