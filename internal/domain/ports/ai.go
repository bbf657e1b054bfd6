package ports

import (
	"context"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
)

// TextGenerationProvider is the single capability a provider implements:
// generate text from a prompt, credential, endpoint, model name and timeout,
// observing the context for cancellation at the request boundary.
type TextGenerationProvider interface {
	GenerateText(ctx context.Context, req models.GenerationRequest) (string, error)
}

// Interactor is the user-interaction surface the generation orchestrator
// needs: the one-time consent disclosure, the per-call confirmation (modal or
// typed prompt preview), and non-terminal warnings.
type Interactor interface {
	// AcceptDataSharing shows the disclosure and returns the user's decision.
	AcceptDataSharing(disclosure string) bool

	// ConfirmSend asks a modal yes/no question before the provider call.
	ConfirmSend(question string) bool

	// ConfirmPromptPreview shows the exact prompt and reads a typed reply. An
	// empty reply or the literal confirmation token (case-insensitive)
	// confirms; anything else cancels.
	ConfirmPromptPreview(prompt string) bool

	// Warn surfaces a non-terminal problem without failing the invocation.
	Warn(msg string)

	// Progress shows an activity indicator with the given message until the
	// returned stop function is called.
	Progress(message string) (stop func())
}
