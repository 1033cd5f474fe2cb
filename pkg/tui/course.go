package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rohit-373/ScheduleMate/pkg/config"
	"github.com/rohit-373/ScheduleMate/pkg/event"
	"github.com/rohit-373/ScheduleMate/pkg/gcal"
	"github.com/rohit-373/ScheduleMate/pkg/timetable"
)

// RunCourseTUI runs the interactive loop for entering courses and creating
// their recurring events on Google Calendar.
func RunCourseTUI() error {
	fmt.Println(accentStyle.Render("Welcome to ScheduleMate!"))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	table, err := timetable.Load(cfg.TimetablePath)
	if err != nil {
		return err
	}

	// The consent flow may need console input, so no spinner around this.
	svc, err := gcal.NewService(context.Background(), cfg.CredentialsPath, cfg.TokenPath)
	if err != nil {
		return fmt.Errorf("google calendar authorization failed: %w", err)
	}
	client := gcal.NewClient(svc)

	for {
		course, calSelection, err := promptCourse(cfg)
		if err != nil {
			return err
		}

		calendarID, err := config.ResolveCalendarID(calSelection)
		if err != nil {
			return err
		}

		events, missing := event.Build(course, table, time.Now())

		var created int
		var submitErr error
		if len(events) > 0 {
			_ = spinner.New().
				Title(fmt.Sprintf("Creating %d recurring events...", len(events))).
				Action(func() {
					created, submitErr = gcal.SubmitAll(client, calendarID, events)
				}).
				Run()
		}

		if submitErr != nil {
			fmt.Println(errorStyle.Render(fmt.Sprintf("Created %d of %d events before an API error: %v", created, len(events), submitErr)))
		} else if missing != "" {
			fmt.Println(errorStyle.Render(fmt.Sprintf("Slot %s not found in timetable.", missing)))
		} else {
			fmt.Println(accentStyle.Render(fmt.Sprintf("\nEvent created: %s - %s in %s with %s", course.Title, course.Code, course.Venue, course.Faculty)))
		}

		again, err := confirmAnotherCourse()
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// promptCourse collects one round of course input plus the target calendar.
func promptCourse(cfg *config.AppConfig) (event.Course, string, error) {
	var course event.Course
	calSelection := cfg.DefaultCalendar

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Course title").
				Value(&course.Title).
				Validate(nonEmpty("course title")),

			huh.NewInput().
				Title("Course code").
				Value(&course.Code),

			huh.NewInput().
				Title("Slot").
				Description("Compound slots join with +, e.g. A1+TB1").
				Value(&course.Slot).
				Validate(nonEmpty("slot")),

			huh.NewInput().
				Title("Venue").
				Value(&course.Venue),

			huh.NewInput().
				Title("Faculty name").
				Value(&course.Faculty),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Event color").
				Options(paletteOptions()...).
				Value(&course.Color),

			huh.NewSelect[string]().
				Title("Calendar").
				Options(
					huh.NewOption("Academics", config.CalendarAcademics),
					huh.NewOption("Extra-curricular", config.CalendarExtraCurricular),
				).
				Value(&calSelection),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return course, "", err
	}

	return course, calSelection, nil
}

// paletteOptions renders the fixed color palette as a numbered list.
func paletteOptions() []huh.Option[string] {
	titleCaser := cases.Title(language.English)

	var options []huh.Option[string]
	for _, p := range event.Palette {
		label := fmt.Sprintf("%d. %s", p.Code, titleCaser.String(p.Name))
		options = append(options, huh.NewOption(label, p.Name))
	}
	return options
}

func confirmAnotherCourse() (bool, error) {
	again := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Do you want to add another course?").
				Affirmative("Yes").
				Negative("No").
				Value(&again),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return false, err
	}
	return again, nil
}

func nonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}
