package session

import "time"

// Message is one turn of a conversation, role-tagged the way LLM chat
// APIs expect ("user" or "assistant").
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Draft carries booking fields extracted so far across turns. Empty fields
// are unknown, not cleared.
type Draft struct {
	Intent          string `json:"intent,omitempty"`
	Date            string `json:"date,omitempty"`
	Time            string `json:"time,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Title           string `json:"title,omitempty"`
}

// MergeFrom overlays non-empty fields of incoming onto d. Fields the new
// turn did not mention survive from earlier turns.
func (d *Draft) MergeFrom(incoming *Draft) {
	if incoming == nil {
		return
	}
	if incoming.Intent != "" {
		d.Intent = incoming.Intent
	}
	if incoming.Date != "" {
		d.Date = incoming.Date
	}
	if incoming.Time != "" {
		d.Time = incoming.Time
	}
	if incoming.DurationMinutes > 0 {
		d.DurationMinutes = incoming.DurationMinutes
	}
	if incoming.Title != "" {
		d.Title = incoming.Title
	}
}

// BookingRecord is a booking completed within a session.
type BookingRecord struct {
	EventID   string    `json:"event_id"`
	Summary   string    `json:"summary"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	HtmlLink  string    `json:"html_link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is the per-conversation state: message history, the pending
// booking draft, and completed bookings.
type Session struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Messages  []Message       `json:"messages"`
	Draft     *Draft          `json:"draft,omitempty"`
	Bookings  []BookingRecord `json:"bookings,omitempty"`
}

// clone returns a deep copy so callers can read session state without
// holding the store lock.
func (s *Session) clone() *Session {
	cp := &Session{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Messages:  make([]Message, len(s.Messages)),
		Bookings:  make([]BookingRecord, len(s.Bookings)),
	}
	copy(cp.Messages, s.Messages)
	copy(cp.Bookings, s.Bookings)
	if s.Draft != nil {
		draftCopy := *s.Draft
		cp.Draft = &draftCopy
	}
	return cp
}
