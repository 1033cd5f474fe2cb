package event

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/rohit-373/ScheduleMate/pkg/timetable"
)

// All events are anchored to IST; the calendar API receives the offset
// spelled out in the timestamps themselves.
const (
	TimeZone     = "Asia/Kolkata"
	utcOffset    = "+05:30"
	reminderMins = 15
)

// Course holds one round of operator input. It lives only for the round
// it was entered in.
type Course struct {
	Title   string
	Code    string
	Slot    string // possibly compound, e.g. "A1+TB1"
	Venue   string
	Faculty string
	Color   string
}

// Event is a submission-ready recurring calendar event.
type Event struct {
	Summary         string
	Description     string
	Location        string
	StartDateTime   string // RFC3339 with the fixed +05:30 offset
	EndDateTime     string
	TimeZone        string
	WeekDay         string
	Recurrence      string // "RRULE:FREQ=WEEKLY;WKST=SU;BYDAY=MO"
	ColorID         string
	ReminderMinutes int64
}

// weekdayIndex uses the Monday-based numbering the timetable codes follow.
var weekdayIndex = map[string]int{
	"MO": 0, "TU": 1, "WE": 2, "TH": 3, "FR": 4, "SA": 5, "SU": 6,
}

var rruleDays = map[string]rrule.Weekday{
	"MO": rrule.MO, "TU": rrule.TU, "WE": rrule.WE, "TH": rrule.TH,
	"FR": rrule.FR, "SA": rrule.SA, "SU": rrule.SU,
}

// weeklyRule holds the precomputed RRULE string for each weekday code.
var weeklyRule = func() map[string]string {
	m := make(map[string]string, len(rruleDays))
	for code, day := range rruleDays {
		r, err := rrule.NewRRule(rrule.ROption{
			Freq:  rrule.WEEKLY,
			Wkst:  rrule.SU,
			Byweekday: []rrule.Weekday{day},
		})
		if err != nil {
			panic(fmt.Sprintf("building weekly rule for %s: %v", code, err))
		}
		m[code] = "RRULE:" + r.String()
	}
	return m
}()

// NextOccurrence returns the date of the nearest occurrence of the given
// weekday code, counting from today. When today already is that weekday the
// result is today, even if the slot's start time has passed; the recurrence
// rule makes the first elapsed instance harmless.
func NextOccurrence(weekDay string, today time.Time) (time.Time, bool) {
	target, ok := weekdayIndex[weekDay]
	if !ok {
		return time.Time{}, false
	}

	// time.Weekday counts from Sunday; shift to the Monday-based index.
	daysAhead := target - (int(today.Weekday())+6)%7
	if daysAhead < 0 {
		daysAhead += 7
	}
	return today.AddDate(0, 0, daysAhead), true
}

// Build resolves a course's compound slot code against the timetable and
// produces one Event per session, in slot order.
//
// Tokens are resolved left to right. The first token missing from the
// timetable aborts the build: events already produced from earlier tokens are
// returned alongside the name of the missing token, and later tokens are
// never attempted.
func Build(course Course, table *timetable.Table, today time.Time) ([]Event, string) {
	slots := strings.Split(strings.ReplaceAll(course.Slot, " ", ""), "+")
	colorID := strconv.Itoa(ColorCode(course.Color))

	var events []Event
	for _, slot := range slots {
		sessions, err := table.Lookup(slot)
		if err != nil {
			return events, slot
		}

		for _, s := range sessions {
			date, ok := NextOccurrence(s.WeekDay, today)
			if !ok {
				// Parse validated the weekday codes, so this cannot happen
				// for a loaded table.
				return events, slot
			}
			day := date.Format("2006-01-02")

			events = append(events, Event{
				Summary:         course.Title,
				Description:     fmt.Sprintf("%s - %s", course.Code, course.Faculty),
				Location:        course.Venue,
				StartDateTime:   fmt.Sprintf("%sT%s:00%s", day, s.StartTime, utcOffset),
				EndDateTime:     fmt.Sprintf("%sT%s:00%s", day, s.EndTime, utcOffset),
				TimeZone:        TimeZone,
				WeekDay:         s.WeekDay,
				Recurrence:      weeklyRule[s.WeekDay],
				ColorID:         colorID,
				ReminderMinutes: reminderMins,
			})
		}
	}

	return events, ""
}
