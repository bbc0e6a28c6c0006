package contact

import (
	"errors"
	"net/http"
)

// Kind classifies relay failures. The HTTP status of a failure depends only on its kind.
type Kind uint8

const (
	// KindInternal covers malformed bodies, transport failures, timeouts and panics.
	KindInternal Kind = iota
	// KindValidation means a required field is empty after trimming.
	KindValidation
	// KindConfiguration means the email provider credential is missing.
	KindConfiguration
	// KindUpstream means the provider answered with a non-2xx status.
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConfiguration:
		return "configuration"
	case KindUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

// Messages returned to callers.
const (
	MsgMissingFields    = "Missing required fields"
	MsgNotConfigured    = "Email service not configured"
	MsgUnexpected       = "Unexpected error"
	MsgUpstreamFallback = "Failed to send email"
)

// Sentinel errors wrapped by *Error, usable with errors.Is.
var (
	ErrMissingFields = errors.New("contact: missing required fields")
	ErrNotConfigured = errors.New("contact: email service not configured")
	ErrUpstream      = errors.New("contact: email provider rejected the message")
	ErrUnexpected    = errors.New("contact: unexpected error")
)

// Error is the failure outcome of a relay attempt.
type Error struct {
	// Err is the underlying cause. It never leaves the process.
	Err error
	// ProviderResponse is the provider body, parsed JSON when possible, else raw text.
	ProviderResponse any
	Message          string
	ProviderStatus   int
	Kind             Kind
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status for the failure.
func (e *Error) StatusCode() int {
	return StatusCode(e.Kind, e.ProviderStatus)
}

// Response returns the JSON body sent to the caller.
func (e *Error) Response() any {
	if e.Kind == KindUpstream {
		return UpstreamErrorResponse{
			Error:            e.Message,
			ProviderStatus:   e.StatusCode(),
			ProviderResponse: e.ProviderResponse,
		}
	}
	return ErrorResponse{Error: e.Message}
}

// StatusCode maps a failure kind to its HTTP status.
// providerStatus is only consulted for KindUpstream; zero means the provider gave none.
func StatusCode(kind Kind, providerStatus int) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUpstream:
		if providerStatus > 0 {
			return providerStatus
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse is the body of validation, configuration and internal failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UpstreamErrorResponse is the body of a provider rejection.
type UpstreamErrorResponse struct {
	ProviderResponse any    `json:"providerResponse"`
	Error            string `json:"error"`
	ProviderStatus   int    `json:"providerStatus"`
}

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func validationError() *Error {
	return &Error{Kind: KindValidation, Message: MsgMissingFields, Err: ErrMissingFields}
}

func configurationError() *Error {
	return &Error{Kind: KindConfiguration, Message: MsgNotConfigured, Err: ErrNotConfigured}
}

func internalError(cause error) *Error {
	return &Error{Kind: KindInternal, Message: MsgUnexpected, Err: errors.Join(ErrUnexpected, cause)}
}
