package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tailortalk/internal/booking"
	"tailortalk/internal/model"
	"tailortalk/internal/scheduling"
	"tailortalk/internal/session"
	"tailortalk/pkg/gcalendar"
)

// Chat runs one conversational turn through the fixed pipeline:
// intent -> calendar scan -> confirmation -> completion -> respond.
func (uc *implUseCase) Chat(ctx context.Context, input booking.ChatInput) (out booking.ChatOutput, err error) {
	if strings.TrimSpace(input.Message) == "" {
		return booking.ChatOutput{}, booking.ErrEmptyMessage
	}

	sessionID := uc.sessions.AppendMessageAt(input.SessionID, model.RoleUser, input.Message, uc.messageTime(input.Timestamp))

	// Any panic inside a stage becomes an apologetic reply; a chat turn
	// must never take the whole request down.
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "Chat: panic recovered, session=%s: %v", sessionID, r)
			out = booking.ChatOutput{
				Response:  booking.ApologeticReply,
				SessionID: sessionID,
			}
			err = nil
			uc.sessions.AppendMessage(sessionID, model.RoleAssistant, out.Response)
		}
	}()

	uc.l.Infof(ctx, "Chat: session=%s message_length=%d", sessionID, len(input.Message))

	st := &booking.ConversationState{
		SessionID: sessionID,
		Message:   input.Message,
	}

	uc.understandIntent(ctx, st)
	uc.mergeDraft(st)
	uc.checkCalendar(ctx, st)
	uc.detectConfirmation(st)
	uc.completeBooking(ctx, st)
	uc.generateReply(ctx, st)

	uc.sessions.AppendMessage(sessionID, model.RoleAssistant, st.Response)

	return booking.ChatOutput{
		Response:         st.Response,
		SessionID:        sessionID,
		BookingConfirmed: st.BookingConfirmed,
		SuggestedSlots:   capSlots(st.AvailableSlots, uc.cfg.ResponseMaxSlots),
	}, nil
}

// mergeDraft folds this turn's extracted fields into the session's pending
// draft and reads the accumulated result back. Fields mentioned in earlier
// turns survive turns that do not repeat them.
func (uc *implUseCase) mergeDraft(st *booking.ConversationState) {
	merged := uc.sessions.MergeDraft(st.SessionID, fieldsToDraft(st.Intent, st.Fields))

	st.Fields.Date = merged.Date
	st.Fields.Time = merged.Time
	if merged.DurationMinutes > 0 {
		st.Fields.DurationMinutes = merged.DurationMinutes
	}
	if merged.Title != "" {
		st.Fields.Title = merged.Title
	}
	if st.Intent == booking.IntentGeneralInquiry && merged.Intent != "" {
		st.Intent = merged.Intent
	}
}

// ConfirmSlot books an explicitly selected slot. Single calendar attempt;
// failure reports a polite message rather than an error so the client can
// offer the user another slot.
func (uc *implUseCase) ConfirmSlot(ctx context.Context, input booking.ConfirmInput) (booking.ConfirmOutput, error) {
	if input.Slot.Start.IsZero() || input.Slot.End.IsZero() {
		return booking.ConfirmOutput{}, booking.ErrNoSlotSelected
	}
	if !input.Slot.End.After(input.Slot.Start) {
		return booking.ConfirmOutput{}, booking.ErrInvalidSlot
	}

	sessionID := uc.sessions.GetOrCreate(input.SessionID).ID

	title := input.Slot.Title
	if title == "" {
		title = booking.DefaultTitle
	}
	label := input.Slot.Label
	if label == "" {
		label = scheduling.FormatSlotLabel(input.Slot.Start, input.Slot.End)
	}

	uc.l.Infof(ctx, "ConfirmSlot: session=%s slot=%s", sessionID, label)

	failed := func() (booking.ConfirmOutput, error) {
		msg := "I'm sorry, there was an issue confirming your booking. The time slot might no longer be available. Please try selecting a different time."
		uc.sessions.AppendMessage(sessionID, model.RoleAssistant, msg)
		return booking.ConfirmOutput{
			Message:   msg,
			SessionID: sessionID,
		}, nil
	}

	if uc.calendar == nil {
		uc.l.Warnf(ctx, "ConfirmSlot: no calendar configured, session=%s", sessionID)
		return failed()
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     title,
		Description: bookedViaDescription,
		StartTime:   input.Slot.Start,
		EndTime:     input.Slot.End,
		Timezone:    uc.cfg.Timezone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "ConfirmSlot: calendar event creation failed, session=%s: %v", sessionID, err)
		return failed()
	}
	if event.ID == "" {
		uc.l.Errorf(ctx, "ConfirmSlot: calendar returned an event without an id, session=%s", sessionID)
		return failed()
	}

	uc.sessions.AppendBooking(sessionID, session.BookingRecord{
		EventID:   event.ID,
		Summary:   title,
		Start:     input.Slot.Start,
		End:       input.Slot.End,
		HtmlLink:  event.HtmlLink,
		CreatedAt: time.Now(),
	})

	msg := fmt.Sprintf("Perfect! Your %s has been confirmed for %s. I've added it to your calendar and you should receive a confirmation shortly.",
		strings.ToLower(title), label)
	uc.sessions.AppendMessage(sessionID, model.RoleAssistant, msg)

	uc.l.Infof(ctx, "ConfirmSlot: booked %q session=%s event=%s", title, sessionID, event.ID)

	return booking.ConfirmOutput{
		Message:          msg,
		SessionID:        sessionID,
		BookingConfirmed: true,
		BookingID:        event.ID,
		EventLink:        event.HtmlLink,
	}, nil
}

// SessionDetail returns the conversation history for a session.
func (uc *implUseCase) SessionDetail(ctx context.Context, sessionID string) (booking.SessionOutput, error) {
	sess, ok := uc.sessions.Get(sessionID)
	if !ok {
		return booking.SessionOutput{}, booking.ErrSessionNotFound
	}
	return booking.SessionOutput{Session: sess}, nil
}

// SessionDelete removes a session and its history.
func (uc *implUseCase) SessionDelete(ctx context.Context, sessionID string) error {
	if !uc.sessions.Delete(sessionID) {
		return booking.ErrSessionNotFound
	}
	uc.l.Infof(ctx, "SessionDelete: session=%s", sessionID)
	return nil
}

const probeSessionID = "health_check"

// Probe runs one synthetic turn through the whole pipeline so the health
// endpoint reflects the agent's real state, then discards the session.
func (uc *implUseCase) Probe(ctx context.Context) booking.ProbeOutput {
	_, err := uc.Chat(ctx, booking.ChatInput{
		SessionID: probeSessionID,
		Message:   "test",
	})
	uc.sessions.Delete(probeSessionID)

	status := "healthy"
	if err != nil {
		status = "unhealthy"
	}
	return booking.ProbeOutput{
		AgentStatus:    status,
		ActiveSessions: uc.sessions.Len(),
	}
}
