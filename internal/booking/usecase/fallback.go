package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"tailortalk/internal/booking"
)

var (
	bookingVerbs      = []string{"book", "schedule", "appointment", "meeting", "call"}
	availabilityHints = []string{"availab", "do you have time", "free slot", "open slot", "when are you free"}
	meetingTitleNouns = []string{"call", "meeting", "appointment", "interview", "consultation", "session"}

	// Ordered: the most specific pattern wins.
	timeWithMeridiem    = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*(am|pm)\b`)
	hourWithMeridiem    = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(am|pm)\b`)
	twentyFourHourClock = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	durationPattern     = regexp.MustCompile(`(?i)(\d+)\s*(hour|hr|minute|min)`)
)

// extractFallback is the deterministic parser used when the LLM is
// unavailable or returns garbage. It covers the common phrasings without
// attempting to be clever.
func (uc *implUseCase) extractFallback(message string, now time.Time) extraction {
	lower := strings.ToLower(message)

	intent := booking.IntentGeneralInquiry
	if containsAny(lower, bookingVerbs) {
		intent = booking.IntentBookAppointment
	} else if containsAny(lower, availabilityHints) {
		intent = booking.IntentCheckAvailability
	}

	// Fields stay zero unless the message actually mentions them, so a
	// later merge never clobbers values from earlier turns with defaults.
	var f booking.Fields

	if intent == booking.IntentGeneralInquiry {
		return extraction{Intent: intent, Fields: f}
	}

	if date, ok := uc.dateMath.ExtractDate(message, now); ok {
		f.Date = date.Format("2006-01-02")
	}

	if clock := extractClock(message); clock != "" {
		f.Time = clock
	}

	if m := durationPattern.FindStringSubmatch(lower); m != nil {
		num, _ := strconv.Atoi(m[1])
		if strings.HasPrefix(m[2], "hour") || strings.HasPrefix(m[2], "hr") {
			f.DurationMinutes = num * 60
		} else {
			f.DurationMinutes = num
		}
	}

	for _, noun := range meetingTitleNouns {
		if strings.Contains(lower, noun) {
			f.Title = strings.ToUpper(noun[:1]) + noun[1:]
			break
		}
	}

	if f.Date == "" {
		f.NeedsClarification = append(f.NeedsClarification, "specific_date")
	}
	if f.Time == "" {
		f.NeedsClarification = append(f.NeedsClarification, "preferred_time")
	}

	return extraction{Intent: intent, Fields: f}
}

// extractClock finds the first time expression in the message and returns
// it normalized to HH:MM 24-hour form, or "" when none matches.
func extractClock(message string) string {
	if m := timeWithMeridiem.FindStringSubmatch(message); m != nil {
		hour, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		return formatClock(applyMeridiem(hour, m[3]), min)
	}
	if m := hourWithMeridiem.FindStringSubmatch(message); m != nil {
		hour, _ := strconv.Atoi(m[1])
		return formatClock(applyMeridiem(hour, m[2]), 0)
	}
	if m := twentyFourHourClock.FindStringSubmatch(message); m != nil {
		hour, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if hour < 24 && min < 60 {
			return formatClock(hour, min)
		}
	}
	return ""
}

func applyMeridiem(hour int, meridiem string) int {
	switch strings.ToLower(meridiem) {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return hour
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
