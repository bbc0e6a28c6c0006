package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email and performs exactly one delivery attempt.
type Sender interface {
	// Send delivers an email message.
	// A non-2xx provider answer is reported as *ProviderError.
	Send(ctx context.Context, email *Email) (*Receipt, error)
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email) (*Receipt, error)

// Send calls f(ctx, email).
func (f SenderFunc) Send(ctx context.Context, email *Email) (*Receipt, error) {
	return f(ctx, email)
}
