package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/rohit-373/ScheduleMate/pkg/event"
)

// GenerateICS renders the built recurring events to an ICS calendar and
// writes it to the provided writer.
func GenerateICS(events []event.Event, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for i, ev := range events {
		startTime, err := time.Parse(time.RFC3339, ev.StartDateTime)
		if err != nil {
			return fmt.Errorf("invalid start timestamp %q: %w", ev.StartDateTime, err)
		}
		endTime, err := time.Parse(time.RFC3339, ev.EndDateTime)
		if err != nil {
			return fmt.Errorf("invalid end timestamp %q: %w", ev.EndDateTime, err)
		}

		e := cal.AddEvent(fmt.Sprintf("%s-%d", startTime.Format("20060102T150405Z"), i))
		e.SetCreatedTime(time.Now())
		e.SetDtStampTime(time.Now())
		e.SetModifiedAt(time.Now())
		e.SetStartAt(startTime)
		e.SetEndAt(endTime)
		e.SetSummary(ev.Summary)
		e.SetLocation(ev.Location)
		e.SetDescription(ev.Description)

		// The builder carries the rule with the Google-style "RRULE:" prefix;
		// the ICS property wants just the value.
		e.AddRrule(strings.TrimPrefix(ev.Recurrence, "RRULE:"))

		alarm := e.AddAlarm()
		alarm.SetAction(ics.ActionDisplay)
		alarm.SetTrigger(fmt.Sprintf("-PT%dM", ev.ReminderMinutes))
	}

	return cal.SerializeTo(w)
}
