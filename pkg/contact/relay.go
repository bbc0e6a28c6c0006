package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sengiku/studio/pkg/logger"
	"github.com/sengiku/studio/pkg/mailer"
)

// Relay turns contact-form submissions into one outbound email each.
// It holds no mutable state and is safe for concurrent use.
type Relay struct {
	sender mailer.Sender
	logger *slog.Logger
	cfg    Config
}

// Option configures a Relay.
type Option func(*Relay)

// WithLogger sets the logger used to report relay outcomes.
func WithLogger(l *slog.Logger) Option {
	return func(r *Relay) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRelay creates a relay that delivers through sender.
func NewRelay(sender mailer.Sender, cfg Config, opts ...Option) *Relay {
	r := &Relay{
		sender: sender,
		cfg:    cfg,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// HandleSubmission parses a raw request body and relays it.
// Any failure is returned as *Error.
func (r *Relay) HandleSubmission(ctx context.Context, raw []byte) (res *Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			res, err = nil, r.fail(ctx, internalError(fmt.Errorf("panic: %v", rec)))
		}
	}()

	msg, err := Parse(raw)
	if err != nil {
		return nil, r.fail(ctx, internalError(err))
	}
	return r.Send(ctx, msg)
}

// Send normalizes, validates and delivers msg.
// Validation and configuration failures never reach the provider.
func (r *Relay) Send(ctx context.Context, msg Message) (*Result, error) {
	msg = msg.Normalize()
	if err := msg.Validate(); err != nil {
		return nil, r.fail(ctx, validationError())
	}

	if r.cfg.APIKey == "" {
		return nil, r.fail(ctx, configurationError())
	}

	email := &mailer.Email{
		From:    ResolveSender(r.cfg.FromEmail),
		To:      []string{r.cfg.destination()},
		Subject: msg.Subject,
		HTML:    ComposeHTML(msg, r.cfg.SanitizeHTML),
		ReplyTo: msg.Email,
	}

	// The send outlives a disconnected caller but not the timeout.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.cfg.sendTimeout())
	defer cancel()

	receipt, err := r.sender.Send(sendCtx, email)
	if err != nil {
		if pe, ok := mailer.AsProviderError(err); ok {
			return nil, r.fail(ctx, &Error{
				Kind:             KindUpstream,
				Message:          upstreamMessage(pe.Body),
				ProviderStatus:   pe.StatusCode,
				ProviderResponse: providerResponse(pe.Body),
				Err:              errors.Join(ErrUpstream, err),
			})
		}
		return nil, r.fail(ctx, internalError(err))
	}

	r.logger.InfoContext(ctx, "contact message relayed",
		slog.String("message_id", receipt.ID),
		slog.Int("provider_status", receipt.StatusCode),
	)

	return &Result{
		Success:          true,
		MessageID:        receipt.ID,
		ProviderResponse: providerResponse(receipt.Body),
	}, nil
}

// Healthcheck reports whether the relay can send at all.
func (r *Relay) Healthcheck() func(context.Context) error {
	return func(context.Context) error {
		if r.cfg.APIKey == "" {
			return ErrNotConfigured
		}
		return nil
	}
}

func (r *Relay) fail(ctx context.Context, e *Error) *Error {
	attrs := []any{
		slog.String("kind", e.Kind.String()),
		slog.Int("status", e.StatusCode()),
	}
	switch e.Kind {
	case KindValidation, KindConfiguration:
		r.logger.WarnContext(ctx, "contact message rejected", attrs...)
	default:
		if e.Err != nil {
			attrs = append(attrs, slog.String("error", e.Err.Error()))
		}
		r.logger.ErrorContext(ctx, "contact message not relayed", attrs...)
	}
	return e
}
