package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestConfigLoadSave(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "schedulemate-config-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	// Override the home directory environment variable for testing
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests

	// 1. Load with no existing file yields the defaults
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg.TimetablePath != "timetable.json" {
		t.Errorf("expected default timetable path, got %q", cfg.TimetablePath)
	}
	if cfg.DefaultCalendar != CalendarAcademics {
		t.Errorf("expected default calendar %q, got %q", CalendarAcademics, cfg.DefaultCalendar)
	}

	// 2. Modify and Save the config
	cfg.TimetablePath = "/tmp/custom-timetable.json"
	cfg.DefaultCalendar = CalendarExtraCurricular
	cfg.AccentColor = "212"

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	configPath := filepath.Join(tempDir, ".schedulemate.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	// 3. Load with existing file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "schedulemate-config-err-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	configPath := filepath.Join(tempDir, ".schedulemate.json")
	if err := os.WriteFile(configPath, []byte("invalid json { content"), 0644); err != nil {
		t.Fatalf("failed to write invalid json: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Errorf("expected error when loading invalid json, got nil")
	}
}

func TestResolveCalendarID(t *testing.T) {
	t.Setenv("ACADEMICS", "academics-id@group.calendar.google.com")
	t.Setenv("EXTRA_CURRICULAR", "")

	id, err := ResolveCalendarID(CalendarAcademics)
	if err != nil {
		t.Fatalf("unexpected error resolving academics calendar: %v", err)
	}
	if id != "academics-id@group.calendar.google.com" {
		t.Errorf("unexpected calendar ID: %q", id)
	}

	if _, err := ResolveCalendarID(CalendarExtraCurricular); err == nil {
		t.Errorf("expected error for unset EXTRA_CURRICULAR, got nil")
	}

	if _, err := ResolveCalendarID("personal"); err == nil {
		t.Errorf("expected error for unknown selection, got nil")
	}
}
