package usecase

import (
	"context"
	"time"

	"tailortalk/internal/booking"
	"tailortalk/internal/session"
	"tailortalk/pkg/gcalendar"
)

const bookedViaDescription = "Booked via TailorTalk assistant"

// completeBooking writes the confirmed slot to the calendar. Single attempt:
// a failed calendar write clears the confirmation so the reply never claims
// a booking that does not exist.
func (uc *implUseCase) completeBooking(ctx context.Context, st *booking.ConversationState) {
	if !st.BookingConfirmed {
		return
	}
	if st.SelectedSlot == nil {
		// Affirmative wording with nothing concrete to book yet.
		st.BookingConfirmed = false
		st.ConfirmationPending = true
		return
	}

	title := st.Fields.Title
	if title == "" {
		title = booking.DefaultTitle
	}

	if uc.calendar == nil {
		uc.l.Warnf(ctx, "Chat: booking confirmed but no calendar configured, session=%s", st.SessionID)
		st.BookingConfirmed = false
		st.Diagnostic = "Calendar is not configured"
		return
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     title,
		Description: bookedViaDescription,
		StartTime:   st.SelectedSlot.Start,
		EndTime:     st.SelectedSlot.End,
		Timezone:    uc.cfg.Timezone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Chat: booking completion failed, session=%s: %v", st.SessionID, err)
		st.BookingConfirmed = false
		st.Diagnostic = "Could not create the calendar event"
		return
	}
	if event.ID == "" {
		uc.l.Errorf(ctx, "Chat: calendar returned an event without an id, session=%s", st.SessionID)
		st.BookingConfirmed = false
		st.Diagnostic = "Could not create the calendar event"
		return
	}

	st.BookingID = event.ID
	st.EventLink = event.HtmlLink

	uc.sessions.AppendBooking(st.SessionID, session.BookingRecord{
		EventID:   event.ID,
		Summary:   title,
		Start:     st.SelectedSlot.Start,
		End:       st.SelectedSlot.End,
		HtmlLink:  event.HtmlLink,
		CreatedAt: time.Now(),
	})

	uc.l.Infof(ctx, "Chat: booked %q session=%s event=%s slot=%s", title, st.SessionID, event.ID, st.SelectedSlot.Label)
}
