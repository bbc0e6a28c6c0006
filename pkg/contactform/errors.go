package contactform

import "errors"

var (
	// ErrSubmitInFlight is returned when Submit is called while a previous attempt
	// has not resolved. No request is sent and no notification is shown.
	ErrSubmitInFlight = errors.New("contactform: submission already in flight")

	// ErrRequiredField is returned when a required field is empty.
	ErrRequiredField = errors.New("contactform: required field is empty")

	// ErrUnknownField is returned by Set for a field the form does not have.
	ErrUnknownField = errors.New("contactform: unknown field")
)
