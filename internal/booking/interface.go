package booking

import "context"

// UseCase defines the business logic interface for the booking domain.
type UseCase interface {
	// Chat runs one conversational turn through the booking pipeline and
	// returns the assistant reply plus any suggested slots.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// ConfirmSlot books a specific slot the user selected.
	ConfirmSlot(ctx context.Context, input ConfirmInput) (ConfirmOutput, error)

	// SessionDetail returns the conversation history for a session.
	SessionDetail(ctx context.Context, sessionID string) (SessionOutput, error)

	// SessionDelete removes a session and its history.
	SessionDelete(ctx context.Context, sessionID string) error

	// Probe runs a synthetic conversation turn to verify the agent works
	// end to end. Used by the health endpoint.
	Probe(ctx context.Context) ProbeOutput
}
