package usecase

import (
	"context"
	"time"

	"tailortalk/internal/booking"
	"tailortalk/internal/scheduling"
	"tailortalk/pkg/gcalendar"
)

// checkCalendar scans the calendar for free slots when the intent calls for
// it. A remote failure never aborts the turn: the state gets a diagnostic
// and an empty slot list so the reply can still explain the situation.
func (uc *implUseCase) checkCalendar(ctx context.Context, st *booking.ConversationState) {
	if st.Intent != booking.IntentBookAppointment && st.Intent != booking.IntentCheckAvailability {
		return
	}

	loc := uc.location()
	now := uc.now().In(loc)

	duration := st.Fields.DurationMinutes
	if duration <= 0 {
		duration = uc.cfg.DefaultDurationMinutes
	}

	var rangeStart, rangeEnd time.Time
	var maxSlots int
	if st.Fields.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", st.Fields.Date, loc)
		if err != nil {
			uc.l.Warnf(ctx, "Chat: unparsable date %q, falling back to multi-day scan", st.Fields.Date)
			st.Fields.Date = ""
			rangeStart, rangeEnd = now, now.AddDate(0, 0, uc.cfg.ScanDays-1)
			maxSlots = uc.cfg.MultiDayMaxSlots
		} else {
			rangeStart, rangeEnd = day, day
			maxSlots = uc.cfg.SingleDayMaxSlots
		}
	} else {
		rangeStart, rangeEnd = now, now.AddDate(0, 0, uc.cfg.ScanDays-1)
		maxSlots = uc.cfg.MultiDayMaxSlots
	}

	busy, err := uc.busyIntervals(ctx, rangeStart, rangeEnd, loc)
	if err != nil {
		uc.l.Errorf(ctx, "Chat: calendar availability check failed: %v", err)
		st.AvailableSlots = nil
		st.Diagnostic = "Could not check calendar availability"
		return
	}

	st.AvailableSlots = scheduling.FindAvailableSlots(scheduling.FindSlotsOptions{
		RangeStart:      rangeStart,
		RangeEnd:        rangeEnd,
		DurationMinutes: duration,
		WorkingHours:    uc.cfg.WorkingHours,
		StepMinutes:     uc.cfg.StepMinutes,
		Busy:            busy,
		MaxResults:      maxSlots,
		Location:        loc,
	})
}

func (uc *implUseCase) busyIntervals(ctx context.Context, rangeStart, rangeEnd time.Time, loc *time.Location) ([]scheduling.BusyInterval, error) {
	if uc.calendar == nil {
		// No calendar configured: treat the whole range as free.
		return nil, nil
	}

	timeMin := time.Date(rangeStart.Year(), rangeStart.Month(), rangeStart.Day(), 0, 0, 0, 0, loc)
	timeMax := time.Date(rangeEnd.Year(), rangeEnd.Month(), rangeEnd.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)

	periods, err := uc.calendar.FreeBusy(ctx, gcalendar.FreeBusyRequest{
		CalendarID: uc.cfg.CalendarID,
		TimeMin:    timeMin,
		TimeMax:    timeMax,
		Timezone:   uc.cfg.Timezone,
	})
	if err != nil {
		return nil, err
	}

	busy := make([]scheduling.BusyInterval, 0, len(periods))
	for _, p := range periods {
		busy = append(busy, scheduling.BusyInterval{Start: p.Start, End: p.End})
	}
	return busy, nil
}
