package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rohit-373/ScheduleMate/pkg/tui"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add courses to Google Calendar",
	Long:  `Enter courses one by one and create their weekly recurring events on the configured Google Calendar.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunCourseTUI()
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
