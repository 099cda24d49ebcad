package scheduling

import (
	"testing"
	"time"
)

func busyAt(day time.Time, startHour, startMin, endHour, endMin int) BusyInterval {
	return BusyInterval{
		Start: time.Date(day.Year(), day.Month(), day.Day(), startHour, startMin, 0, 0, day.Location()),
		End:   time.Date(day.Year(), day.Month(), day.Day(), endHour, endMin, 0, 0, day.Location()),
	}
}

func TestIsFree(t *testing.T) {
	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	busy := []BusyInterval{busyAt(day, 13, 0, 14, 0)}

	cases := []struct {
		name       string
		startH     int
		startM     int
		endH       int
		endM       int
		expectFree bool
	}{
		{"Fully before", 11, 0, 12, 0, true},
		{"Fully after", 15, 0, 16, 0, true},
		{"Touching end of busy", 14, 0, 15, 0, true},
		{"Touching start of busy", 12, 0, 13, 0, true},
		{"Overlapping start", 12, 30, 13, 30, false},
		{"Overlapping end", 13, 30, 14, 30, false},
		{"Contained in busy", 13, 15, 13, 45, false},
		{"Containing busy", 12, 0, 15, 0, false},
		{"Exactly busy", 13, 0, 14, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := time.Date(2026, 5, 1, tc.startH, tc.startM, 0, 0, time.UTC)
			end := time.Date(2026, 5, 1, tc.endH, tc.endM, 0, 0, time.UTC)
			if got := IsFree(start, end, busy); got != tc.expectFree {
				t.Errorf("IsFree(%02d:%02d-%02d:%02d) = %v, want %v",
					tc.startH, tc.startM, tc.endH, tc.endM, got, tc.expectFree)
			}
		})
	}

	t.Run("No busy intervals", func(t *testing.T) {
		start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
		if !IsFree(start, start.Add(time.Hour), nil) {
			t.Error("expected free with empty busy list")
		}
	})
}

func TestFindAvailableSlots(t *testing.T) {
	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	hours := WorkingHours{StartHour: 9, EndHour: 17}

	t.Run("Single day with one busy hour", func(t *testing.T) {
		slots := FindAvailableSlots(FindSlotsOptions{
			RangeStart:      day,
			RangeEnd:        day,
			DurationMinutes: 60,
			WorkingHours:    hours,
			StepMinutes:     30,
			Busy:            []BusyInterval{busyAt(day, 13, 0, 14, 0)},
		})

		// Candidates run 09:00 through 16:00 on a 30-minute grid; the
		// 12:30, 13:00 and 13:30 starts collide with the busy hour.
		if len(slots) != 12 {
			t.Fatalf("expected 12 slots, got %d", len(slots))
		}
		if slots[0].Start.Hour() != 9 || slots[0].Start.Minute() != 0 {
			t.Errorf("unexpected first slot: %v", slots[0].Start)
		}
		for _, s := range slots {
			if s.Start.Hour() == 13 || (s.Start.Hour() == 12 && s.Start.Minute() == 30) {
				t.Errorf("slot %v overlaps busy hour", s.Start)
			}
		}
		// Slot right after the busy period is 14:00, touching is allowed
		found := false
		for _, s := range slots {
			if s.Start.Hour() == 14 && s.Start.Minute() == 0 {
				found = true
			}
		}
		if !found {
			t.Error("expected a slot starting at 14:00")
		}
	})

	t.Run("Chronological order", func(t *testing.T) {
		slots := FindAvailableSlots(FindSlotsOptions{
			RangeStart:      day,
			RangeEnd:        day.AddDate(0, 0, 2),
			DurationMinutes: 60,
			WorkingHours:    hours,
		})
		for i := 1; i < len(slots); i++ {
			if !slots[i].Start.After(slots[i-1].Start) {
				t.Fatalf("slots out of order at index %d: %v then %v",
					i, slots[i-1].Start, slots[i].Start)
			}
		}
	})

	t.Run("MaxResults cap", func(t *testing.T) {
		slots := FindAvailableSlots(FindSlotsOptions{
			RangeStart:      day,
			RangeEnd:        day.AddDate(0, 0, 6),
			DurationMinutes: 30,
			WorkingHours:    hours,
			MaxResults:      5,
		})
		if len(slots) != 5 {
			t.Fatalf("expected 5 slots, got %d", len(slots))
		}
	})

	t.Run("Duration longer than working window", func(t *testing.T) {
		slots := FindAvailableSlots(FindSlotsOptions{
			RangeStart:      day,
			RangeEnd:        day,
			DurationMinutes: 9 * 60,
			WorkingHours:    hours,
		})
		if len(slots) != 0 {
			t.Fatalf("expected no slots, got %d", len(slots))
		}
	})

	t.Run("Reversed range", func(t *testing.T) {
		slots := FindAvailableSlots(FindSlotsOptions{
			RangeStart:      day.AddDate(0, 0, 3),
			RangeEnd:        day,
			DurationMinutes: 60,
			WorkingHours:    hours,
		})
		if len(slots) != 0 {
			t.Fatalf("expected no slots for reversed range, got %d", len(slots))
		}
	})

	t.Run("Out-of-hours busy interval is harmless", func(t *testing.T) {
		withBusy := FindAvailableSlots(FindSlotsOptions{
			RangeStart:      day,
			RangeEnd:        day,
			DurationMinutes: 60,
			WorkingHours:    hours,
			Busy:            []BusyInterval{busyAt(day, 19, 0, 20, 0)},
		})
		without := FindAvailableSlots(FindSlotsOptions{
			RangeStart:      day,
			RangeEnd:        day,
			DurationMinutes: 60,
			WorkingHours:    hours,
		})
		if len(withBusy) != len(without) {
			t.Fatalf("evening busy interval changed results: %d vs %d",
				len(withBusy), len(without))
		}
	})

	t.Run("Non-positive duration", func(t *testing.T) {
		slots := FindAvailableSlots(FindSlotsOptions{
			RangeStart:   day,
			RangeEnd:     day,
			WorkingHours: hours,
		})
		if slots != nil {
			t.Fatalf("expected nil slots for zero duration, got %d", len(slots))
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		opts := FindSlotsOptions{
			RangeStart:      day,
			RangeEnd:        day,
			DurationMinutes: 60,
			WorkingHours:    hours,
			Busy:            []BusyInterval{busyAt(day, 10, 0, 11, 0)},
		}
		first := FindAvailableSlots(opts)
		second := FindAvailableSlots(opts)
		if len(first) != len(second) {
			t.Fatalf("expected identical runs, got %d vs %d", len(first), len(second))
		}
		for i := range first {
			if !first[i].Start.Equal(second[i].Start) || first[i].Label != second[i].Label {
				t.Fatalf("run mismatch at %d: %+v vs %+v", i, first[i], second[i])
			}
		}
	})

	t.Run("Label format", func(t *testing.T) {
		slots := FindAvailableSlots(FindSlotsOptions{
			RangeStart:      day,
			RangeEnd:        day,
			DurationMinutes: 60,
			WorkingHours:    WorkingHours{StartHour: 14, EndHour: 16},
		})
		if len(slots) == 0 {
			t.Fatal("expected slots")
		}
		if slots[0].Label != "2026-05-01 02:00 PM - 03:00 PM" {
			t.Errorf("unexpected label: %q", slots[0].Label)
		}
	})
}
