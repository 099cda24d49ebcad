package http

import (
	"time"

	"tailortalk/internal/booking"
	"tailortalk/internal/session"
)

// --- Request DTOs ---

type chatReq struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

func (r chatReq) toInput() booking.ChatInput {
	return booking.ChatInput{
		SessionID: r.SessionID,
		Message:   r.Message,
		Timestamp: r.Timestamp,
	}
}

type confirmReq struct {
	ConversationID string         `json:"conversation_id"`
	SelectedSlot   selectedSlotIn `json:"selected_slot" binding:"required"`
}

type selectedSlotIn struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
	Time  string    `json:"time"`
	Title string    `json:"title"`
}

func (r confirmReq) toInput() booking.ConfirmInput {
	return booking.ConfirmInput{
		SessionID: r.ConversationID,
		Slot: booking.SelectedSlot{
			Start: r.SelectedSlot.Start,
			End:   r.SelectedSlot.End,
			Label: r.SelectedSlot.Time,
			Title: r.SelectedSlot.Title,
		},
	}
}

// --- Response DTOs ---

type slotResp struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Time  string    `json:"time"`
}

type chatResp struct {
	Response         string     `json:"response"`
	SessionID        string     `json:"session_id"`
	BookingConfirmed bool       `json:"booking_confirmed"`
	SuggestedSlots   []slotResp `json:"suggested_slots"`
}

func (h *handler) newChatResp(out booking.ChatOutput) chatResp {
	slots := make([]slotResp, len(out.SuggestedSlots))
	for i, s := range out.SuggestedSlots {
		slots[i] = slotResp{Start: s.Start, End: s.End, Time: s.Label}
	}
	return chatResp{
		Response:         out.Response,
		SessionID:        out.SessionID,
		BookingConfirmed: out.BookingConfirmed,
		SuggestedSlots:   slots,
	}
}

type confirmResp struct {
	Message          string `json:"message"`
	SessionID        string `json:"session_id"`
	BookingConfirmed bool   `json:"booking_confirmed"`
	BookingID        string `json:"booking_id,omitempty"`
	EventLink        string `json:"event_link,omitempty"`
}

func (h *handler) newConfirmResp(out booking.ConfirmOutput) confirmResp {
	return confirmResp{
		Message:          out.Message,
		SessionID:        out.SessionID,
		BookingConfirmed: out.BookingConfirmed,
		BookingID:        out.BookingID,
		EventLink:        out.EventLink,
	}
}

type messageResp struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type bookingRecordResp struct {
	EventID   string    `json:"event_id"`
	Summary   string    `json:"summary"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	EventLink string    `json:"event_link,omitempty"`
}

type sessionResp struct {
	ID        string              `json:"id"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	Messages  []messageResp       `json:"messages"`
	Bookings  []bookingRecordResp `json:"bookings,omitempty"`
}

func (h *handler) newSessionResp(sess *session.Session) sessionResp {
	messages := make([]messageResp, len(sess.Messages))
	for i, m := range sess.Messages {
		messages[i] = messageResp{Role: m.Role, Content: m.Content, Timestamp: m.Timestamp}
	}
	bookings := make([]bookingRecordResp, len(sess.Bookings))
	for i, b := range sess.Bookings {
		bookings[i] = bookingRecordResp{
			EventID:   b.EventID,
			Summary:   b.Summary,
			Start:     b.Start,
			End:       b.End,
			EventLink: b.HtmlLink,
		}
	}
	return sessionResp{
		ID:        sess.ID,
		CreatedAt: sess.CreatedAt,
		UpdatedAt: sess.UpdatedAt,
		Messages:  messages,
		Bookings:  bookings,
	}
}
