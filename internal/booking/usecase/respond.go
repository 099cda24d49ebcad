package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tailortalk/internal/booking"
	"tailortalk/pkg/llmprovider"
)

// generateReply produces the assistant response for the turn. The LLM gets
// the pipeline outcome as structured context; when it fails, a templated
// reply built from the same context goes out instead.
func (uc *implUseCase) generateReply(ctx context.Context, st *booking.ConversationState) {
	rc := replyContext{
		Intent:              st.Intent,
		Date:                st.Fields.Date,
		Time:                st.Fields.Time,
		DurationMinutes:     st.Fields.DurationMinutes,
		Title:               st.Fields.Title,
		NeedsClarification:  st.Fields.NeedsClarification,
		ConfirmationPending: st.ConfirmationPending,
		BookingConfirmed:    st.BookingConfirmed,
		Error:               st.Diagnostic,
	}
	for _, slot := range capSlots(st.AvailableSlots, uc.cfg.ResponseMaxSlots) {
		rc.AvailableSlots = append(rc.AvailableSlots, slot.Label)
	}
	if st.BookingConfirmed && st.SelectedSlot != nil {
		rc.BookedSlot = st.SelectedSlot.Label
	}

	reply, err := uc.replyWithLLM(ctx, st.Message, rc)
	if err != nil {
		uc.l.Warnf(ctx, "Chat: response generation via LLM failed, using template: %v", err)
		reply = uc.templateReply(st)
	}
	st.Response = reply
}

func (uc *implUseCase) replyWithLLM(ctx context.Context, message string, rc replyContext) (string, error) {
	if uc.llm == nil {
		return "", llmprovider.ErrNoProvidersConfigured
	}

	contextJSON, err := json.Marshal(rc)
	if err != nil {
		return "", err
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{{Role: "user", Content: buildRespondPrompt(string(contextJSON), message)}},
		Temperature: 0.1,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", err
	}

	reply := strings.TrimSpace(resp.Text)
	if reply == "" {
		return "", llmprovider.ErrEmptyResponse
	}
	return reply, nil
}

// templateReply is the degraded response path: list slots when there are
// some, otherwise ask for details.
func (uc *implUseCase) templateReply(st *booking.ConversationState) string {
	if st.BookingConfirmed && st.SelectedSlot != nil {
		return fmt.Sprintf("Perfect! Your %s has been confirmed for %s. I've added it to your calendar.",
			strings.ToLower(titleOrDefault(st.Fields.Title)), st.SelectedSlot.Label)
	}

	slots := capSlots(st.AvailableSlots, uc.cfg.ResponseMaxSlots)
	if len(slots) > 0 {
		var sb strings.Builder
		sb.WriteString("I found these available times:\n")
		for _, slot := range slots {
			sb.WriteString(fmt.Sprintf("- %s\n", slot.Label))
		}
		sb.WriteString("\nWhich one works best for you?")
		return sb.String()
	}

	if st.Diagnostic != "" {
		return "I ran into a problem checking the calendar. Could you try again in a moment?"
	}

	if st.Intent == booking.IntentGeneralInquiry {
		return booking.GreetingReply
	}
	return booking.PromptForDetailsReply
}

func titleOrDefault(title string) string {
	if title == "" {
		return booking.DefaultTitle
	}
	return title
}
