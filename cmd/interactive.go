package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rohit-373/ScheduleMate/pkg/tui"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to add courses, export schedules, and manage settings interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTUI()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
