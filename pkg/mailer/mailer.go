package mailer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sengiku/studio/pkg/logger"
)

// Mailer validates emails before handing them to a provider Sender.
// It is itself a Sender, so it can be dropped in wherever one is expected.
type Mailer struct {
	sender Sender
	logger *slog.Logger
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithLogger sets the logger used to report provider failures.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mailer) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a new Mailer wrapping the given provider.
func New(sender Sender, opts ...Option) *Mailer {
	m := &Mailer{
		sender: sender,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send validates the email and performs one delivery attempt.
// Provider rejections keep their *ProviderError in the chain alongside ErrSendFailed.
func (m *Mailer) Send(ctx context.Context, email *Email) (*Receipt, error) {
	if err := Validate(email); err != nil {
		return nil, err
	}

	receipt, err := m.sender.Send(ctx, email)
	if err != nil {
		m.logger.DebugContext(ctx, "email provider call failed",
			slog.String("subject", email.Subject),
			slog.String("error", err.Error()),
		)
		return nil, errors.Join(ErrSendFailed, err)
	}

	return receipt, nil
}

// Validate checks the fields every provider requires.
func Validate(email *Email) error {
	switch {
	case email == nil || len(email.To) == 0:
		return ErrNoRecipient
	case email.From == "":
		return ErrNoSender
	case email.Subject == "":
		return ErrNoSubject
	case email.HTML == "":
		return ErrNoContent
	}
	return nil
}
