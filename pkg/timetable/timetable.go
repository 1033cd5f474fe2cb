package timetable

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
)

// ErrSlotNotFound is returned by Lookup when a slot code has no timetable entry.
var ErrSlotNotFound = errors.New("slot not found in timetable")

var validWeekDays = map[string]bool{
	"MO": true, "TU": true, "WE": true, "TH": true,
	"FR": true, "SA": true, "SU": true,
}

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Table is an immutable index from slot code to its weekly sessions.
// It is loaded once at startup and never mutated afterwards.
type Table struct {
	slots map[string][]Session
}

// Load reads and parses the timetable JSON file at the given path.
func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open timetable file: %w", err)
	}
	defer file.Close()

	table, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse timetable file %s: %w", path, err)
	}
	return table, nil
}

// Parse decodes timetable JSON and validates every session entry.
// The expected shape is {"A1": {"sessions": [{"weekDay": "MO", ...}]}}.
func Parse(r io.Reader) (*Table, error) {
	var raw map[string]entry
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode timetable JSON: %w", err)
	}

	slots := make(map[string][]Session, len(raw))
	for slot, e := range raw {
		if len(e.Sessions) == 0 {
			return nil, fmt.Errorf("slot %s has no sessions", slot)
		}
		for _, s := range e.Sessions {
			if !validWeekDays[s.WeekDay] {
				return nil, fmt.Errorf("slot %s has invalid weekday %q", slot, s.WeekDay)
			}
			if !timePattern.MatchString(s.StartTime) || !timePattern.MatchString(s.EndTime) {
				return nil, fmt.Errorf("slot %s has malformed time in session %s %s-%s", slot, s.WeekDay, s.StartTime, s.EndTime)
			}
			// Zero-padded HH:MM strings order lexically.
			if s.StartTime >= s.EndTime {
				return nil, fmt.Errorf("slot %s session on %s ends before it starts (%s-%s)", slot, s.WeekDay, s.StartTime, s.EndTime)
			}
		}
		slots[slot] = e.Sessions
	}

	return &Table{slots: slots}, nil
}

// Lookup returns the sessions of a single slot code in their stored order.
func (t *Table) Lookup(slot string) ([]Session, error) {
	sessions, ok := t.slots[slot]
	if !ok {
		return nil, fmt.Errorf("slot %s: %w", slot, ErrSlotNotFound)
	}
	return sessions, nil
}

// Len reports how many slot codes are indexed.
func (t *Table) Len() int {
	return len(t.slots)
}
