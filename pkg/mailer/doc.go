// Package mailer provides a provider-agnostic email sending interface.
//
// Providers implement [Sender] and perform exactly one delivery attempt per call.
// A provider that rejects the email returns a [*ProviderError] carrying the HTTP
// status and the raw response body, so callers can relay the provider's own reason.
//
// [Mailer] wraps a provider and validates each [Email] before it leaves the process:
//
//	sender := resend.New(resend.Config{APIKey: cfg.Resend.APIKey})
//	m := mailer.New(sender, mailer.WithLogger(log))
//
//	receipt, err := m.Send(ctx, &mailer.Email{
//	    From:    "Studio <hello@example.com>",
//	    To:      []string{"inbox@example.com"},
//	    Subject: "New Contact Message",
//	    HTML:    "<p>Hello</p>",
//	    ReplyTo: "ada@example.com",
//	})
//	if pe, ok := mailer.AsProviderError(err); ok {
//	    // pe.StatusCode, pe.Body
//	}
//
// For tests, [SenderFunc] turns a closure into a Sender.
package mailer
