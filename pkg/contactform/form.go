package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sengiku/studio/pkg/logger"
)

// Notification texts.
const (
	LoadingMessage  = "Sending message..."
	SuccessMessage  = "Message sent successfully!"
	FallbackMessage = "Failed to send message"
)

const (
	defaultTimeout  = 30 * time.Second
	maxResponseSize = 1 << 20
)

// State is the form's position in its submission lifecycle.
type State uint8

const (
	StateIdle State = iota
	StateSending
	StateSuccess
	StateFailure
)

func (s State) String() string {
	switch s {
	case StateSending:
		return "sending"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return "idle"
	}
}

// Field names a form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields holds the form's current input values.
type Fields struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type payload struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message"`
}

// Form is the client side of the contact relay. It keeps field values, checks
// required fields and posts one request per submission attempt. Outcomes are
// reported only through the Notifier.
type Form struct {
	client      *http.Client
	notifier    Notifier
	logger      *slog.Logger
	endpoint    string
	withSubject bool

	mu     sync.Mutex
	fields Fields
	state  State
}

// Option configures a Form.
type Option func(*Form)

// WithHTTPClient replaces the HTTP client used to reach the relay.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Form) {
		if c != nil {
			f.client = c
		}
	}
}

// WithSubject includes the subject field in the request body.
func WithSubject() Option {
	return func(f *Form) {
		f.withSubject = true
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates a form posting to endpoint, e.g. "https://sengiku.studio/api/contact".
func New(endpoint string, notifier Notifier, opts ...Option) *Form {
	f := &Form{
		client:   &http.Client{Timeout: defaultTimeout},
		notifier: notifier,
		logger:   logger.NewNope(),
		endpoint: endpoint,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Set changes a field value.
func (f *Form) Set(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldName:
		f.fields.Name = value
	case FieldEmail:
		f.fields.Email = value
	case FieldSubject:
		f.fields.Subject = value
	case FieldMessage:
		f.fields.Message = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// Fields returns a copy of the current values.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// State returns the current lifecycle state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit sends the form. It returns an error only when nothing was sent:
// a required field is empty or another attempt is in flight.
// Delivery outcomes go to the Notifier.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == StateSending {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	if field, ok := missingField(f.fields); ok {
		f.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrRequiredField, field)
	}
	fields := f.fields
	f.state = StateSending
	f.mu.Unlock()

	n := f.notifier.Loading(LoadingMessage)

	if errMsg, ok := f.post(ctx, fields); !ok {
		f.resolve(StateFailure, false)
		n.Error(errMsg)
		return nil
	}

	f.resolve(StateSuccess, true)
	n.Success(SuccessMessage)
	return nil
}

func (f *Form) resolve(state State, clear bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = state
	if clear {
		f.fields = Fields{}
	}
}

// post returns the message to display and whether the relay accepted the submission.
func (f *Form) post(ctx context.Context, fields Fields) (string, bool) {
	body := payload{Name: fields.Name, Email: fields.Email, Message: fields.Message}
	if f.withSubject {
		body.Subject = &fields.Subject
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return FallbackMessage, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(raw))
	if err != nil {
		return FallbackMessage, false
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.WarnContext(ctx, "contact relay unreachable",
			slog.String("request_id", requestID),
			slog.String("error", err.Error()),
		)
		return FallbackMessage, false
	}
	defer func() { _ = resp.Body.Close() }()

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))

	var decoded map[string]json.RawMessage
	hasError := false
	errMsg := FallbackMessage
	if json.Unmarshal(data, &decoded) == nil {
		if v, ok := decoded["error"]; ok {
			hasError = true
			var s string
			if json.Unmarshal(v, &s) == nil && s != "" {
				errMsg = s
			}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || hasError {
		f.logger.WarnContext(ctx, "contact relay rejected submission",
			slog.String("request_id", requestID),
			slog.Int("status", resp.StatusCode),
		)
		return errMsg, false
	}
	return "", true
}

func missingField(fields Fields) (Field, bool) {
	switch {
	case fields.Name == "":
		return FieldName, true
	case fields.Email == "":
		return FieldEmail, true
	case fields.Message == "":
		return FieldMessage, true
	}
	return "", false
}
