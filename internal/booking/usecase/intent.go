package usecase

import (
	"context"
	"encoding/json"
	"time"

	"tailortalk/internal/booking"
	"tailortalk/pkg/llmprovider"
)

// understandIntent extracts the intent and booking fields from the user
// message. Primary path is the LLM with a structured-output prompt; any
// failure falls back to the deterministic parser.
func (uc *implUseCase) understandIntent(ctx context.Context, st *booking.ConversationState) {
	now := uc.now().In(uc.location())

	extracted, err := uc.extractWithLLM(ctx, st.Message, now)
	if err != nil {
		uc.l.Warnf(ctx, "Chat: intent extraction via LLM failed, using fallback parser: %v", err)
		extracted = uc.extractFallback(st.Message, now)
	}

	st.Intent = extracted.Intent
	st.Fields = extracted.Fields
}

type extraction struct {
	Intent string
	Fields booking.Fields
}

func (uc *implUseCase) extractWithLLM(ctx context.Context, message string, now time.Time) (extraction, error) {
	if uc.llm == nil {
		return extraction{}, llmprovider.ErrNoProvidersConfigured
	}

	prompt := buildIntentPrompt(message, now.Format(time.RFC3339))
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{{Role: "user", Content: prompt}},
		Temperature: 0.1,
		MaxTokens:   1000,
	})
	if err != nil {
		return extraction{}, err
	}

	cleaned := sanitizeJSONResponse(resp.Text)

	var parsed llmIntent
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		uc.l.Warnf(ctx, "Chat: failed to parse intent JSON. Raw=%q Cleaned=%q", resp.Text, cleaned)
		return extraction{}, err
	}

	intent := parsed.Intent
	switch intent {
	case booking.IntentBookAppointment, booking.IntentCheckAvailability,
		booking.IntentConfirmBooking, booking.IntentGeneralInquiry:
	default:
		intent = booking.IntentGeneralInquiry
	}

	return extraction{
		Intent: intent,
		Fields: booking.Fields{
			Date:               parsed.Details.Date,
			Time:               normalizeClock(parsed.Details.Time),
			DurationMinutes:    parsed.Details.Duration,
			Title:              parsed.Details.Title,
			NeedsClarification: parsed.Details.NeedsClarification,
		},
	}, nil
}
