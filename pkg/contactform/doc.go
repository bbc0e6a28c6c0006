// Package contactform is the client side of the contact relay.
//
// A [Form] moves through idle, sending, success and failure states. Submit
// checks that name, email and message are present, posts them as JSON with a
// fresh X-Request-ID and reports the outcome through a [Notifier]: one loading
// notification per attempt, replaced by either a success or an error message.
// On success the fields are cleared; on failure they are kept for a retry.
//
//	form := contactform.New("https://sengiku.studio/api/contact",
//	    contactform.NewWriterNotifier(os.Stdout),
//	    contactform.WithSubject(),
//	)
//	_ = form.Set(contactform.FieldName, "Ada")
//	_ = form.Set(contactform.FieldEmail, "ada@example.com")
//	_ = form.Set(contactform.FieldMessage, "We need a new site.")
//	if err := form.Submit(ctx); err != nil {
//	    // ErrRequiredField or ErrSubmitInFlight
//	}
//
// A second Submit while one is in flight returns [ErrSubmitInFlight] without
// sending anything.
package contactform
