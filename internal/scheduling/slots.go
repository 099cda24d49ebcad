package scheduling

import "time"

// IsFree reports whether [start, end) overlaps none of the busy intervals.
// Intervals are half-open, so a candidate that starts exactly when a busy
// period ends (or ends when one starts) is free.
func IsFree(start, end time.Time, busy []BusyInterval) bool {
	for _, b := range busy {
		if start.Before(b.End) && end.After(b.Start) {
			return false
		}
	}
	return true
}

// FindAvailableSlots enumerates free slots of the requested duration inside
// working hours across the date range. Results come out in chronological
// order by construction.
func FindAvailableSlots(opts FindSlotsOptions) []Slot {
	step := opts.StepMinutes
	if step <= 0 {
		step = DefaultStepMinutes
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	duration := time.Duration(opts.DurationMinutes) * time.Minute
	if duration <= 0 {
		return nil
	}

	rangeStart := startOfDay(opts.RangeStart.In(loc))
	rangeEnd := startOfDay(opts.RangeEnd.In(loc))
	if rangeEnd.Before(rangeStart) {
		return nil
	}

	var slots []Slot
	for day := rangeStart; !day.After(rangeEnd); day = day.AddDate(0, 0, 1) {
		windowStart := time.Date(day.Year(), day.Month(), day.Day(),
			opts.WorkingHours.StartHour, 0, 0, 0, loc)
		windowEnd := time.Date(day.Year(), day.Month(), day.Day(),
			opts.WorkingHours.EndHour, 0, 0, 0, loc)

		for candidate := windowStart; !candidate.Add(duration).After(windowEnd); candidate = candidate.Add(time.Duration(step) * time.Minute) {
			candidateEnd := candidate.Add(duration)
			if !IsFree(candidate, candidateEnd, opts.Busy) {
				continue
			}
			slots = append(slots, Slot{
				Start: candidate,
				End:   candidateEnd,
				Label: FormatSlotLabel(candidate, candidateEnd),
			})
			if opts.MaxResults > 0 && len(slots) >= opts.MaxResults {
				return slots
			}
		}
	}
	return slots
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
