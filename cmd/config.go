package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rohit-373/ScheduleMate/pkg/config"
	"github.com/rohit-373/ScheduleMate/pkg/timetable"
	"github.com/rohit-373/ScheduleMate/pkg/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ScheduleMate configuration",
	Long:  "View or edit your local configuration settings (like the timetable path or default calendar).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setTimetable, _ := cmd.Flags().GetString("set-timetable")
		if setTimetable != "" {
			// Make sure the file actually parses before saving the path.
			table, err := timetable.Load(setTimetable)
			if err != nil {
				return err
			}

			cfg.TimetablePath = setTimetable
			if err := config.Save(cfg); err != nil {
				return err
			}

			fmt.Printf("✅ Timetable path saved as: %s (%d slots)\n", setTimetable, table.Len())
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-timetable", "s", "", "Set the path of the timetable JSON file")
}
