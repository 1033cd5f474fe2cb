package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rohit-373/ScheduleMate/pkg/config"
)

var (
	// These act as fallbacks initially; GetTheme replaces the accent once the
	// saved config is known.
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// GetTheme loads the user's saved accent color and constructs the UI theme.
func GetTheme() *huh.Theme {
	cfg, err := config.Load()
	baseColor := "39" // Default ScheduleMate blue

	if err == nil && cfg != nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}

	// Update the global lipgloss accent so manual CLI print statements also
	// receive the color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a huh.Theme instantiated with the provided lipgloss
// color string, used for live-previewing accents before they are saved.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// RunTUI launches the main menu interactive form experience
func RunTUI() error {
	var action string

	initialForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("📅 Add Courses to Google Calendar", "add"),
					huh.NewOption("💾 Export Courses to an ICS File", "export"),
					huh.NewOption("⚙️ Settings", "config"),
				).
				Value(&action),
		),
	).WithTheme(GetTheme())

	if err := initialForm.Run(); err != nil {
		return err
	}

	if action == "export" {
		return RunExportTUI()
	} else if action == "config" {
		return RunConfigTUI()
	}

	return RunCourseTUI()
}
