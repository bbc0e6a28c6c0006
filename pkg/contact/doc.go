// Package contact relays contact-form submissions to the studio inbox by email.
//
// A submission goes through a fixed pipeline: [Parse], [Message.Normalize],
// [Message.Validate], a configuration check, sender resolution with
// [ResolveSender], body composition with [ComposeHTML], one provider call and
// translation of the provider's answer. [Relay.HandleSubmission] runs the whole
// pipeline on a raw request body:
//
//	relay := contact.NewRelay(mailer.New(resend.New(cfg.Resend)), cfg.Contact,
//	    contact.WithLogger(log),
//	)
//
//	res, err := relay.HandleSubmission(ctx, body)
//	if e, ok := contact.AsError(err); ok {
//	    // e.StatusCode(), e.Response()
//	}
//
// Every failure is a [*Error] whose [Kind] alone decides the HTTP status:
// validation 400, configuration 500, upstream the provider's status (502 when
// absent) and internal 500. Internal causes stay in the error chain and are
// never rendered.
//
// Fields are interpolated into the HTML body verbatim. Set
// Config.SanitizeHTML to strip markup from submitted values first.
package contact
