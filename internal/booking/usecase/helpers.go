package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"tailortalk/internal/booking"
	"tailortalk/internal/scheduling"
	"tailortalk/internal/session"
)

var codeFencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := codeFencePattern.FindStringSubmatch(text); len(m) > 1 {
		text = m[1]
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}

// normalizeClock converts a time expression to HH:MM 24-hour form.
// Returns "" when the input cannot be understood.
func normalizeClock(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if clock := extractClock(s); clock != "" {
		return clock
	}
	return ""
}

func formatClock(hour, min int) string {
	return fmt.Sprintf("%02d:%02d", hour, min)
}

// messageTime honors a client-supplied RFC3339 timestamp, falling back to
// the server clock when it is absent or malformed.
func (uc *implUseCase) messageTime(stamp string) time.Time {
	if stamp != "" {
		if t, err := time.Parse(time.RFC3339, stamp); err == nil {
			return t
		}
	}
	return uc.now()
}

func (uc *implUseCase) location() *time.Location {
	if loc, err := time.LoadLocation(uc.cfg.Timezone); err == nil {
		return loc
	}
	return time.UTC
}

// slotFromFields builds a concrete slot when the draft carries both a date
// and a time.
func (uc *implUseCase) slotFromFields(f booking.Fields) (*scheduling.Slot, bool) {
	if f.Date == "" || f.Time == "" {
		return nil, false
	}

	loc := uc.location()
	day, err := time.ParseInLocation("2006-01-02", f.Date, loc)
	if err != nil {
		return nil, false
	}
	clock, err := time.Parse("15:04", f.Time)
	if err != nil {
		return nil, false
	}

	duration := f.DurationMinutes
	if duration <= 0 {
		duration = uc.cfg.DefaultDurationMinutes
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)
	end := start.Add(time.Duration(duration) * time.Minute)
	return &scheduling.Slot{
		Start: start,
		End:   end,
		Label: scheduling.FormatSlotLabel(start, end),
	}, true
}

func capSlots(slots []scheduling.Slot, max int) []scheduling.Slot {
	if max > 0 && len(slots) > max {
		return slots[:max]
	}
	return slots
}

// fieldsToDraft converts pipeline fields into the session draft shape.
// A general inquiry does not overwrite a booking intent remembered from
// earlier turns.
func fieldsToDraft(intent string, f booking.Fields) *session.Draft {
	if intent == booking.IntentGeneralInquiry {
		intent = ""
	}
	return &session.Draft{
		Intent:          intent,
		Date:            f.Date,
		Time:            f.Time,
		DurationMinutes: f.DurationMinutes,
		Title:           f.Title,
	}
}
