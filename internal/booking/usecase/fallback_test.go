package usecase

import (
	"testing"
	"time"

	"tailortalk/internal/booking"
	"tailortalk/pkg/datemath"
)

func newTestUseCase(t *testing.T) *implUseCase {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("failed to create date parser: %v", err)
	}
	uc := New(&mockLogger{}, nil, nil, nil, dm, Config{Timezone: "UTC"})
	uc.now = func() time.Time {
		// A Wednesday
		return time.Date(2026, 5, 6, 10, 0, 0, 0, time.UTC)
	}
	return uc
}

func TestExtractFallback(t *testing.T) {
	uc := newTestUseCase(t)
	now := uc.now()

	t.Run("Booking with relative date, time and duration", func(t *testing.T) {
		got := uc.extractFallback("Book a meeting tomorrow at 3pm for 30 minutes", now)

		if got.Intent != booking.IntentBookAppointment {
			t.Errorf("intent = %q, want book_appointment", got.Intent)
		}
		if got.Fields.Date != "2026-05-07" {
			t.Errorf("date = %q, want 2026-05-07", got.Fields.Date)
		}
		if got.Fields.Time != "15:00" {
			t.Errorf("time = %q, want 15:00", got.Fields.Time)
		}
		if got.Fields.DurationMinutes != 30 {
			t.Errorf("duration = %d, want 30", got.Fields.DurationMinutes)
		}
		if got.Fields.Title != "Meeting" {
			t.Errorf("title = %q, want Meeting", got.Fields.Title)
		}
		if len(got.Fields.NeedsClarification) != 0 {
			t.Errorf("unexpected clarifications: %v", got.Fields.NeedsClarification)
		}
	})

	t.Run("Availability question with weekday", func(t *testing.T) {
		got := uc.extractFallback("Do you have time Friday?", now)

		if got.Intent != booking.IntentCheckAvailability {
			t.Errorf("intent = %q, want check_availability", got.Intent)
		}
		if got.Fields.Date != "2026-05-08" {
			t.Errorf("date = %q, want 2026-05-08", got.Fields.Date)
		}
		if got.Fields.Time != "" {
			t.Errorf("time = %q, want empty", got.Fields.Time)
		}
		if len(got.Fields.NeedsClarification) != 1 || got.Fields.NeedsClarification[0] != "preferred_time" {
			t.Errorf("clarifications = %v, want [preferred_time]", got.Fields.NeedsClarification)
		}
	})

	t.Run("Hour duration", func(t *testing.T) {
		got := uc.extractFallback("Schedule a 2 hour interview today", now)

		if got.Fields.DurationMinutes != 120 {
			t.Errorf("duration = %d, want 120", got.Fields.DurationMinutes)
		}
		if got.Fields.Title != "Interview" {
			t.Errorf("title = %q, want Interview", got.Fields.Title)
		}
		if got.Fields.Date != "2026-05-06" {
			t.Errorf("date = %q, want 2026-05-06", got.Fields.Date)
		}
	})

	t.Run("Small talk stays general inquiry", func(t *testing.T) {
		got := uc.extractFallback("Hello there, how are you?", now)

		if got.Intent != booking.IntentGeneralInquiry {
			t.Errorf("intent = %q, want general_inquiry", got.Intent)
		}
	})

	t.Run("Missing everything asks for both", func(t *testing.T) {
		got := uc.extractFallback("I want to book something", now)

		if got.Intent != booking.IntentBookAppointment {
			t.Errorf("intent = %q, want book_appointment", got.Intent)
		}
		if len(got.Fields.NeedsClarification) != 2 {
			t.Errorf("clarifications = %v, want [specific_date preferred_time]", got.Fields.NeedsClarification)
		}
	})
}

func TestExtractClock(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"meet at 2:30 PM please", "14:30"},
		{"meet at 2 pm", "14:00"},
		{"meet at 12 pm", "12:00"},
		{"meet at 12 am", "00:00"},
		{"meet at 14:30", "14:30"},
		{"meet at 9:05 am", "09:05"},
		{"no time here", ""},
	}
	for _, tc := range cases {
		if got := extractClock(tc.in); got != tc.want {
			t.Errorf("extractClock(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeJSONResponse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"Plain object", `{"intent":"book_appointment"}`, `{"intent":"book_appointment"}`},
		{"Code fence", "```json\n{\"intent\":\"x\"}\n```", `{"intent":"x"}`},
		{"Surrounding prose", `Sure! Here you go: {"intent":"x"} Hope that helps.`, `{"intent":"x"}`},
		{"No JSON at all", "sorry, cannot do that", "sorry, cannot do that"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sanitizeJSONResponse(tc.in); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
