package scheduling

import "time"

const (
	// DefaultStepMinutes is the candidate grid step when none is configured.
	DefaultStepMinutes = 30

	slotLabelStartFormat = "2006-01-02 03:04 PM"
	slotLabelEndFormat   = "03:04 PM"
)

// BusyInterval is a half-open [Start, End) period during which the calendar
// owner is unavailable.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Slot is a bookable candidate interval. Label is the human-readable form
// shown in chat replies, e.g. "2026-05-01 02:00 PM - 02:30 PM".
type Slot struct {
	Start time.Time
	End   time.Time
	Label string
}

// WorkingHours bounds candidate slots to [StartHour:00, EndHour:00) local time.
type WorkingHours struct {
	StartHour int
	EndHour   int
}

// FindSlotsOptions configures a slot enumeration run.
type FindSlotsOptions struct {
	// RangeStart and RangeEnd are inclusive dates; only their calendar day
	// matters, the walk covers every day from RangeStart through RangeEnd.
	RangeStart time.Time
	RangeEnd   time.Time

	DurationMinutes int
	WorkingHours    WorkingHours
	StepMinutes     int // 0 means DefaultStepMinutes
	Busy            []BusyInterval
	MaxResults      int // 0 means unlimited
	Location        *time.Location
}

// FormatSlotLabel renders the display label for a candidate interval.
func FormatSlotLabel(start, end time.Time) string {
	return start.Format(slotLabelStartFormat) + " - " + end.Format(slotLabelEndFormat)
}
