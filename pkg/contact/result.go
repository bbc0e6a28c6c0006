package contact

import (
	"bytes"
	"encoding/json"
)

// Result is the success outcome of a relay attempt.
type Result struct {
	// ProviderResponse is the provider body, parsed JSON when possible, else raw text.
	ProviderResponse any    `json:"providerResponse"`
	MessageID        string `json:"-"`
	Success          bool   `json:"success"`
}

// providerResponse returns body as JSON when it parses to a non-empty value,
// otherwise as raw text.
func providerResponse(body []byte) any {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return string(body)
	}

	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil || isEmptyValue(v) {
		return string(body)
	}
	return json.RawMessage(trimmed)
}

// upstreamMessage picks the caller-facing reason from a provider rejection:
// its "message", else its "error", else the raw body, else a fixed fallback.
func upstreamMessage(body []byte) string {
	var fields struct {
		Message any `json:"message"`
		Error   any `json:"error"`
	}
	if json.Unmarshal(body, &fields) == nil {
		if s := valueText(fields.Message); s != "" {
			return s
		}
		if s := valueText(fields.Error); s != "" {
			return s
		}
	}
	if len(body) > 0 {
		return string(body)
	}
	return MsgUpstreamFallback
}

func valueText(v any) string {
	if isEmptyValue(v) {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	}
	return false
}
