package submit

import "context"

// Prompt is the confirmation question shown before an attempt proceeds.
type Prompt struct {
	Message     string
	Description string
	AcceptLabel string
	CancelLabel string
}

// DefaultPrompt returns the standard pre-submission confirmation wording.
func DefaultPrompt() Prompt {
	return Prompt{
		Message:     "¿Estás seguro de que deseas continuar?",
		Description: "Por favor verifica nuevamente los datos antes de enviar.",
		AcceptLabel: "Enviar",
		CancelLabel: "Cancelar",
	}
}

// Confirmer asks the user to confirm an attempt. There is no timeout; the
// pipeline waits indefinitely for a decision (or context cancellation).
type Confirmer interface {
	Confirm(ctx context.Context, prompt Prompt) (bool, error)
}

// ConfirmerFunc adapts a function into a Confirmer.
type ConfirmerFunc func(ctx context.Context, prompt Prompt) (bool, error)

// Confirm delegates to the underlying function.
func (fn ConfirmerFunc) Confirm(ctx context.Context, prompt Prompt) (bool, error) {
	return fn(ctx, prompt)
}

// Notifier surfaces the single-line outcome of an attempt to the user. The
// pipeline converts every user-facing error into one Failure call; no error
// leaves the pipeline unhandled.
type Notifier interface {
	Success(ctx context.Context, message string)
	Failure(ctx context.Context, message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

// Success implements Notifier.
func (NopNotifier) Success(context.Context, string) {}

// Failure implements Notifier.
func (NopNotifier) Failure(context.Context, string) {}
