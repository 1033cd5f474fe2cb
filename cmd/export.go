package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rohit-373/ScheduleMate/pkg/config"
	"github.com/rohit-373/ScheduleMate/pkg/event"
	"github.com/rohit-373/ScheduleMate/pkg/exporter"
	"github.com/rohit-373/ScheduleMate/pkg/timetable"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Directly export one course to an ICS file",
	Long:  `Export the recurring events of a single course to an ICS file without using the interactive TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		code, _ := cmd.Flags().GetString("code")
		slot, _ := cmd.Flags().GetString("slot")
		venue, _ := cmd.Flags().GetString("venue")
		faculty, _ := cmd.Flags().GetString("faculty")
		color, _ := cmd.Flags().GetString("color")
		output, _ := cmd.Flags().GetString("output")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		table, err := timetable.Load(cfg.TimetablePath)
		if err != nil {
			return err
		}

		course := event.Course{
			Title:   title,
			Code:    code,
			Slot:    slot,
			Venue:   venue,
			Faculty: faculty,
			Color:   color,
		}

		events, missing := event.Build(course, table, time.Now())
		if missing != "" {
			return fmt.Errorf("slot %s not found in timetable", missing)
		}

		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(events, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d recurring events to %s\n", len(events), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("title", "t", "", "Course title")
	exportCmd.Flags().StringP("code", "c", "", "Course code (e.g. CS301)")
	exportCmd.Flags().StringP("slot", "s", "", "Slot code, compound slots join with + (e.g. A1+TB1)")
	exportCmd.Flags().StringP("venue", "v", "", "Venue")
	exportCmd.Flags().StringP("faculty", "f", "", "Faculty name")
	exportCmd.Flags().String("color", "", "Event color name (defaults to lavender)")
	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
	exportCmd.MarkFlagRequired("title")
	exportCmd.MarkFlagRequired("slot")
}
