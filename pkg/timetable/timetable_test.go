package timetable

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const sampleJSON = `{
	"A1": {
		"sessions": [
			{"weekDay": "MO", "startTime": "08:00", "endTime": "08:50"},
			{"weekDay": "WE", "startTime": "09:00", "endTime": "09:50"}
		]
	},
	"TB1": {
		"sessions": [
			{"weekDay": "TU", "startTime": "11:00", "endTime": "11:50"}
		]
	}
}`

func TestParseAndLookup(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if table.Len() != 2 {
		t.Errorf("expected 2 slots in table, got %d", table.Len())
	}

	sessions, err := table.Lookup("A1")
	if err != nil {
		t.Fatalf("Lookup(A1) failed: %v", err)
	}

	expected := []Session{
		{WeekDay: "MO", StartTime: "08:00", EndTime: "08:50"},
		{WeekDay: "WE", StartTime: "09:00", EndTime: "09:50"},
	}
	if !reflect.DeepEqual(sessions, expected) {
		t.Errorf("A1 sessions mismatch.\nGot: %+v\nExpected: %+v", sessions, expected)
	}
}

func TestLookupNotFound(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	_, err = table.Lookup("Z9")
	if err == nil {
		t.Fatalf("expected error for unknown slot Z9, got nil")
	}
	if !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("expected ErrSlotNotFound, got: %v", err)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse(strings.NewReader("not valid json {"))
	if err == nil {
		t.Errorf("expected error for invalid JSON, got nil")
	}
}

func TestParseRejectsBadSessions(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{
			name: "unknown weekday",
			json: `{"A1": {"sessions": [{"weekDay": "XX", "startTime": "08:00", "endTime": "08:50"}]}}`,
		},
		{
			name: "malformed time",
			json: `{"A1": {"sessions": [{"weekDay": "MO", "startTime": "8am", "endTime": "08:50"}]}}`,
		},
		{
			name: "inverted window",
			json: `{"A1": {"sessions": [{"weekDay": "MO", "startTime": "09:00", "endTime": "08:50"}]}}`,
		},
		{
			name: "empty sessions",
			json: `{"A1": {"sessions": []}}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tc.json)); err == nil {
				t.Errorf("expected validation error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does-not-exist.json")
	if err == nil {
		t.Errorf("expected error when loading missing file, got nil")
	}
}
