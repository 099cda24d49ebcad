package booking

import (
	"time"

	"tailortalk/internal/scheduling"
	"tailortalk/internal/session"
)

// ChatInput is one user turn of a booking conversation.
type ChatInput struct {
	SessionID string // empty starts a new session
	Message   string
	Timestamp string // optional client-supplied timestamp, echoed into history
}

// ChatOutput is the assistant's reply for one conversation turn.
type ChatOutput struct {
	Response         string
	SessionID        string
	BookingConfirmed bool
	SuggestedSlots   []scheduling.Slot
}

// SelectedSlot is a slot the user picked for explicit confirmation.
type SelectedSlot struct {
	Start time.Time
	End   time.Time
	Label string
	Title string
}

// ConfirmInput is the input for booking a selected slot.
type ConfirmInput struct {
	SessionID string
	Slot      SelectedSlot
}

// ConfirmOutput is the result of a slot confirmation.
type ConfirmOutput struct {
	Message          string
	SessionID        string
	BookingConfirmed bool
	BookingID        string
	EventLink        string
}

// SessionOutput wraps a session snapshot for the detail operation.
type SessionOutput struct {
	Session *session.Session
}

// ProbeOutput reports agent liveness for the health endpoint.
type ProbeOutput struct {
	AgentStatus    string // "healthy" or "unhealthy"
	ActiveSessions int
}

// Fields is the set of booking attributes extracted from user messages.
// Empty values mean "not mentioned yet".
type Fields struct {
	Date               string // YYYY-MM-DD
	Time               string // HH:MM, 24-hour
	DurationMinutes    int
	Title              string
	NeedsClarification []string
}

// ConversationState carries one chat turn through the pipeline stages.
type ConversationState struct {
	SessionID string
	Message   string

	Intent string
	Fields Fields

	AvailableSlots      []scheduling.Slot
	SelectedSlot        *scheduling.Slot
	ConfirmationPending bool
	BookingConfirmed    bool
	BookingID           string
	EventLink           string

	// Diagnostic set when a downstream dependency failed; the turn still
	// completes with a degraded reply.
	Diagnostic string

	Response string
}
