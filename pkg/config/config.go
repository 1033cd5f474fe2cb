package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Calendar selection names; the actual calendar IDs come from the environment.
const (
	CalendarAcademics       = "academics"
	CalendarExtraCurricular = "extracurricular"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	TimetablePath   string `json:"timetable_path,omitempty"`
	CredentialsPath string `json:"credentials_path,omitempty"`
	TokenPath       string `json:"token_path,omitempty"`
	DefaultCalendar string `json:"default_calendar,omitempty"`
	AccentColor     string `json:"accent_color,omitempty"`
}

// getConfigPath returns the absolute path to ~/.schedulemate.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".schedulemate.json"), nil
}

// Load reads the application configuration from disk and fills in defaults
// for anything unset. Returns the defaults if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if cfg.TimetablePath == "" {
		cfg.TimetablePath = "timetable.json"
	}
	if cfg.CredentialsPath == "" {
		cfg.CredentialsPath = "credentials.json"
	}
	if cfg.TokenPath == "" {
		cfg.TokenPath = "token.json"
	}
	if cfg.DefaultCalendar == "" {
		cfg.DefaultCalendar = CalendarAcademics
	}

	return cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CalendarIDs reads the configured calendar identifiers from the process
// environment, loading a .env file first when one is present.
func CalendarIDs() map[string]string {
	// A missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	return map[string]string{
		CalendarAcademics:       os.Getenv("ACADEMICS"),
		CalendarExtraCurricular: os.Getenv("EXTRA_CURRICULAR"),
	}
}

// ResolveCalendarID picks the calendar ID for the given selection name.
func ResolveCalendarID(selection string) (string, error) {
	ids := CalendarIDs()

	id, ok := ids[selection]
	if !ok {
		return "", fmt.Errorf("unknown calendar selection %q", selection)
	}
	if id == "" {
		env := "ACADEMICS"
		if selection == CalendarExtraCurricular {
			env = "EXTRA_CURRICULAR"
		}
		return "", fmt.Errorf("calendar ID for %q is not set; export %s or add it to .env", selection, env)
	}
	return id, nil
}
