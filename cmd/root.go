package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "schedulemate",
	Short: "A CLI for turning FFCS slot codes into recurring calendar events",
	Long: `ScheduleMate is an application for students to turn their course
slots into weekly recurring events, either directly on Google Calendar
or as an importable .ics file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
