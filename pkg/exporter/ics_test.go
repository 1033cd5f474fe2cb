package exporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rohit-373/ScheduleMate/pkg/event"
)

func TestGenerateICS(t *testing.T) {
	events := []event.Event{
		{
			Summary:         "Algorithms",
			Description:     "CS301 - Dr. X",
			Location:        "Room 5",
			StartDateTime:   "2026-08-31T09:00:00+05:30",
			EndDateTime:     "2026-08-31T09:50:00+05:30",
			TimeZone:        "Asia/Kolkata",
			WeekDay:         "MO",
			Recurrence:      "RRULE:FREQ=WEEKLY;WKST=SU;BYDAY=MO",
			ColorID:         "2",
			ReminderMinutes: 15,
		},
	}

	var buf bytes.Buffer
	if err := GenerateICS(events, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:Algorithms") {
		t.Errorf("expected ICS to contain course summary, got:\n%s", output)
	}
	if !strings.Contains(output, "LOCATION:Room 5") {
		t.Errorf("expected ICS to contain location")
	}
	if !strings.Contains(output, "FREQ=WEEKLY;WKST=SU;BYDAY=MO") {
		t.Errorf("expected ICS to carry the weekly recurrence rule, got:\n%s", output)
	}

	// 31-Aug-2026 09:00 +05:30 is 03:30 UTC.
	if !strings.Contains(output, "DTSTART:20260831T033000Z") {
		t.Errorf("expected UTC start time in ICS, got:\n%s", output)
	}

	if !strings.Contains(output, "BEGIN:VALARM") || !strings.Contains(output, "-PT15M") {
		t.Errorf("expected a display alarm 15 minutes before start, got:\n%s", output)
	}
}

func TestGenerateICSRejectsBadTimestamp(t *testing.T) {
	events := []event.Event{
		{Summary: "Broken", StartDateTime: "yesterday-ish", EndDateTime: "2026-08-31T09:50:00+05:30"},
	}

	var buf bytes.Buffer
	if err := GenerateICS(events, &buf); err == nil {
		t.Errorf("expected error for malformed timestamp, got nil")
	}
}
