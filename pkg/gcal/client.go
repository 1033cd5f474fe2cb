package gcal

import (
	"fmt"

	"google.golang.org/api/calendar/v3"

	"github.com/rohit-373/ScheduleMate/pkg/event"
)

// Inserter is the narrow gateway the submission loop depends on, so tests can
// substitute a double for the live API.
type Inserter interface {
	Insert(calendarID string, ev event.Event) (string, error)
}

// Client submits events to Google Calendar.
type Client struct {
	svc *calendar.Service
}

// NewClient wraps an authorized calendar service.
func NewClient(svc *calendar.Service) *Client {
	return &Client{svc: svc}
}

// Insert creates one recurring event and returns its web link.
func (c *Client) Insert(calendarID string, ev event.Event) (string, error) {
	created, err := c.svc.Events.Insert(calendarID, toGoogleEvent(ev)).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create event %q: %w", ev.Summary, err)
	}
	return created.HtmlLink, nil
}

// toGoogleEvent maps a built event onto the calendar API's wire type.
func toGoogleEvent(ev event.Event) *calendar.Event {
	return &calendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		Start: &calendar.EventDateTime{
			DateTime: ev.StartDateTime,
			TimeZone: ev.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: ev.EndDateTime,
			TimeZone: ev.TimeZone,
		},
		Recurrence: []string{ev.Recurrence},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "popup", Minutes: ev.ReminderMinutes},
			},
			// UseDefault is false, which json omits unless forced.
			ForceSendFields: []string{"UseDefault"},
		},
		ColorId: ev.ColorID,
	}
}

// SubmitAll inserts events one at a time in builder order. It stops at the
// first failure and reports how many events were created before it.
func SubmitAll(ins Inserter, calendarID string, events []event.Event) (int, error) {
	for i, ev := range events {
		if _, err := ins.Insert(calendarID, ev); err != nil {
			return i, err
		}
	}
	return len(events), nil
}
