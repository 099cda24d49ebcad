package usecase

import (
	"strings"

	"tailortalk/internal/booking"
	"tailortalk/internal/scheduling"
)

var (
	affirmativePhrases = []string{"yes", "confirm", "book it", "schedule it", "that works", "perfect", "sounds good"}
	negativePhrases    = []string{"no", "cancel", "not now", "different time"}
)

// detectConfirmation decides whether this turn confirms, rejects, or leaves
// a booking pending. Affirmative wording or an explicit confirm intent sets
// BookingConfirmed; rejection clears the pending draft.
func (uc *implUseCase) detectConfirmation(st *booking.ConversationState) {
	lower := strings.ToLower(st.Message)

	switch {
	case st.Intent == booking.IntentConfirmBooking || containsPhrase(lower, affirmativePhrases):
		st.ConfirmationPending = false
		st.BookingConfirmed = true
		st.SelectedSlot = uc.selectSlot(st)
	case containsPhrase(lower, negativePhrases):
		st.ConfirmationPending = false
		st.BookingConfirmed = false
		uc.sessions.ClearDraft(st.SessionID)
	default:
		st.ConfirmationPending = true
	}
}

// containsPhrase matches whole words only, so "no" does not fire inside
// "tomorrow" and "cancel" does not fire inside "cancellation".
func containsPhrase(s string, phrases []string) bool {
	for _, phrase := range phrases {
		idx := 0
		for {
			i := strings.Index(s[idx:], phrase)
			if i < 0 {
				break
			}
			start := idx + i
			end := start + len(phrase)
			if (start == 0 || !isWordChar(s[start-1])) && (end == len(s) || !isWordChar(s[end])) {
				return true
			}
			idx = start + 1
		}
	}
	return false
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// selectSlot picks the concrete slot to book: explicit date+time from the
// accumulated draft wins, otherwise the first suggested slot.
func (uc *implUseCase) selectSlot(st *booking.ConversationState) *scheduling.Slot {
	if slot, ok := uc.slotFromFields(st.Fields); ok {
		return slot
	}
	if len(st.AvailableSlots) > 0 {
		slot := st.AvailableSlots[0]
		return &slot
	}
	return nil
}
