package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/flixlens/flixlens/internal/log"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "List recent diagnostic sessions",
	Long: `List recent diagnostic sessions recorded under ~/.flixlens/logs.

Each run of a catalog command writes one session containing the load
summary, any recovered row problems, and the queries that ran.`,
	RunE: runLogsCommand,
}

var logsLimit int

func runLogsCommand(cmd *cobra.Command, args []string) error {
	sessions, err := log.ReadSessions(logsLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No diagnostic sessions recorded.")
		return nil
	}

	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			s.Metadata.SessionID,
			s.Metadata.Timestamp.Format("2006-01-02 15:04:05"),
			strings.Join(s.Metadata.CommandArgs, " "),
			s.Metadata.CSVPath,
			strconv.Itoa(s.Metadata.TotalEvents),
			strconv.Itoa(s.Metadata.ErrorEvents),
		})
	}

	fmt.Println(renderTable(
		[]string{"Session", "Started", "Command", "Source", "Events", "Problems"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
	))
	return nil
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().IntVar(&logsLimit, "limit", 10, "Maximum number of sessions to list")
}
