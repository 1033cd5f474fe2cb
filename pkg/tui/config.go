package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/rohit-373/ScheduleMate/pkg/config"
	"github.com/rohit-373/ScheduleMate/pkg/timetable"
)

// RunConfigTUI launches the interactive experience for managing configuration
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Default Calendar", "calendar"),
						huh.NewOption("Set Timetable Path", "timetable"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		if action == "back" {
			return nil
		}

		if action == "theme" {
			err = runSetThemeTUI(cfg)
		} else if action == "calendar" {
			err = runSetCalendarTUI(cfg)
		} else if action == "timetable" {
			err = runSetTimetableTUI(cfg)
		} else if action == "view" {
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.schedulemate.json) ---"))
			fmt.Printf("Timetable Path: %s\n", cfg.TimetablePath)
			fmt.Printf("Credentials Path: %s\n", cfg.CredentialsPath)
			fmt.Printf("Token Path: %s\n", cfg.TokenPath)
			fmt.Printf("Default Calendar: %s\n", cfg.DefaultCalendar)
			if cfg.AccentColor == "" {
				fmt.Println("Accent Color: Not set")
			} else {
				fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
			}
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	color := cfg.AccentColor

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Accent color").
				Description("An ANSI 256 color code, e.g. 39 or 212").
				Value(&color).
				Validate(nonEmpty("accent color")),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.AccentColor = color
	if err := config.Save(cfg); err != nil {
		return err
	}

	// Render the confirmation with the freshly chosen accent.
	fmt.Println(GetCustomTheme(color).Focused.Title.Render(fmt.Sprintf("\n✅ Accent color changed to: %s\n", color)))
	return nil
}

func runSetCalendarTUI(cfg *config.AppConfig) error {
	selected := cfg.DefaultCalendar

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select the default calendar for new courses").
				Options(
					huh.NewOption("Academics", config.CalendarAcademics),
					huh.NewOption("Extra-curricular", config.CalendarExtraCurricular),
				).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.DefaultCalendar = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default calendar changed to: %s\n", selected)))
	return nil
}

func runSetTimetableTUI(cfg *config.AppConfig) error {
	path := cfg.TimetablePath

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Timetable JSON path").
				Value(&path).
				Validate(func(s string) error {
					if _, err := timetable.Load(s); err != nil {
						return err
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.TimetablePath = path
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Timetable path saved as: %s\n", path)))
	return nil
}
