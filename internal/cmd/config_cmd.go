package cmd

import (
	"fmt"
	"strconv"

	"github.com/flixlens/flixlens/internal/catalog"
	"github.com/flixlens/flixlens/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persisted settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		fmt.Println(renderTable(
			[]string{"Setting", "Value"},
			[][]string{
				{"csv_path", cfg.CSVPath},
				{"strict_load", strconv.FormatBool(cfg.StrictLoad)},
				{"on_parse_error", cfg.OnParseError},
				{"date_descending", strconv.FormatBool(cfg.DateDescending)},
				{"enable_logging", strconv.FormatBool(cfg.EnableLogging)},
				{"log_retention_days", strconv.Itoa(cfg.LogRetentionDays)},
			},
			[]columnAlignment{alignLeft, alignLeft},
		))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update one setting and save",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := applySetting(cfg, args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("Set %s = %s\n", args[0], args[1])
		return nil
	},
}

func applySetting(cfg *config.AppConfig, key, value string) error {
	switch key {
	case "csv_path":
		cfg.CSVPath = value
	case "strict_load":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("strict_load wants true or false, got %q", value)
		}
		cfg.StrictLoad = b
	case "on_parse_error":
		policy, err := catalog.ParseParseErrorPolicy(value)
		if err != nil {
			return err
		}
		cfg.OnParseError = policy.String()
	case "date_descending":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("date_descending wants true or false, got %q", value)
		}
		cfg.DateDescending = b
	case "enable_logging":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("enable_logging wants true or false, got %q", value)
		}
		cfg.EnableLogging = b
	case "log_retention_days":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("log_retention_days wants a non-negative number, got %q", value)
		}
		cfg.LogRetentionDays = n
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
}
