package contact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errTrailingData = errors.New("decode contact payload: trailing data")

// Message is a single contact-form submission. It is never stored.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// Parse decodes a request body into a Message.
//
// Every field is optional. Strings are taken as-is, null and missing fields become
// empty, other scalars are kept in their JSON text form and objects or arrays become
// empty. Valid JSON that is not an object yields an empty Message. A body that is not
// JSON at all is an error.
func Parse(raw []byte) (Message, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return Message{}, fmt.Errorf("decode contact payload: %w", err)
	}
	if dec.More() {
		return Message{}, errTrailingData
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return Message{}, nil
	}

	return Message{
		Name:    coerce(obj["name"]),
		Email:   coerce(obj["email"]),
		Subject: coerce(obj["subject"]),
		Message: coerce(obj["message"]),
	}, nil
}

func coerce(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// Normalize trims every field and applies the default subject.
func (m Message) Normalize() Message {
	n := Message{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Subject: strings.TrimSpace(m.Subject),
		Message: strings.TrimSpace(m.Message),
	}
	if n.Subject == "" {
		n.Subject = DefaultSubject
	}
	return n
}

// Validate reports ErrMissingFields when name, email or message is empty.
// Email syntax is not checked.
func (m Message) Validate() error {
	if m.Name == "" || m.Email == "" || m.Message == "" {
		return ErrMissingFields
	}
	return nil
}
