package timetable

// Session represents one weekly time window of a slot
type Session struct {
	WeekDay   string `json:"weekDay"`   // Two-letter code: MO, TU, WE, TH, FR, SA, SU
	StartTime string `json:"startTime"` // "08:00"
	EndTime   string `json:"endTime"`   // "08:50"
}

// entry matches the on-disk shape of one timetable record
type entry struct {
	Sessions []Session `json:"sessions"`
}
