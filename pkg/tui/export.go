package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/rohit-373/ScheduleMate/pkg/config"
	"github.com/rohit-373/ScheduleMate/pkg/event"
	"github.com/rohit-373/ScheduleMate/pkg/exporter"
	"github.com/rohit-373/ScheduleMate/pkg/timetable"
)

// RunExportTUI runs the interactive loop for entering courses and writing
// their recurring events to a local ICS file instead of Google Calendar.
func RunExportTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	table, err := timetable.Load(cfg.TimetablePath)
	if err != nil {
		return err
	}

	var allEvents []event.Event

	for {
		course, _, err := promptCourse(cfg)
		if err != nil {
			return err
		}

		events, missing := event.Build(course, table, time.Now())
		allEvents = append(allEvents, events...)

		if missing != "" {
			fmt.Println(errorStyle.Render(fmt.Sprintf("Slot %s not found in timetable.", missing)))
		} else {
			fmt.Println(accentStyle.Render(fmt.Sprintf("Added %d events for %s", len(events), course.Title)))
		}

		again, err := confirmAnotherCourse()
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	if len(allEvents) == 0 {
		fmt.Println(errorStyle.Render("Nothing to export!"))
		return nil
	}

	outputFile := "schedule.ics"
	outputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(nonEmpty("file name")),
		),
	).WithTheme(GetTheme())

	if err := outputForm.Run(); err != nil {
		return err
	}

	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := exporter.GenerateICS(allEvents, file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported %d recurring events to %s", len(allEvents), outputFile)))
	return nil
}
