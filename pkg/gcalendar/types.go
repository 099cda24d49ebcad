package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID     string
	Summary        string
	Description    string
	StartTime      time.Time
	EndTime        time.Time
	Timezone       string // e.g. "America/New_York"
	AttendeeEmails []string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}

// FreeBusyRequest is the input for querying busy periods on a calendar.
type FreeBusyRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	Timezone   string
}

// BusyPeriod is a half-open [Start, End) interval during which the
// calendar owner is unavailable.
type BusyPeriod struct {
	Start time.Time
	End   time.Time
}
