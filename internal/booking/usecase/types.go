package usecase

// llmIntent is the JSON shape the extraction prompt asks the model for.
type llmIntent struct {
	Intent  string           `json:"intent"`
	Details llmIntentDetails `json:"details"`
}

type llmIntentDetails struct {
	Date               string   `json:"date"`
	Time               string   `json:"time"`
	Duration           int      `json:"duration"`
	Title              string   `json:"title"`
	NeedsClarification []string `json:"needs_clarification"`
}

// replyContext is serialized into the response-generation prompt so the
// model sees the pipeline outcome.
type replyContext struct {
	Intent              string   `json:"intent"`
	Date                string   `json:"date,omitempty"`
	Time                string   `json:"time,omitempty"`
	DurationMinutes     int      `json:"duration_minutes,omitempty"`
	Title               string   `json:"title,omitempty"`
	NeedsClarification  []string `json:"needs_clarification,omitempty"`
	AvailableSlots      []string `json:"available_slots,omitempty"`
	ConfirmationPending bool     `json:"confirmation_pending"`
	BookingConfirmed    bool     `json:"booking_confirmed"`
	BookedSlot          string   `json:"booked_slot,omitempty"`
	Error               string   `json:"error,omitempty"`
}
