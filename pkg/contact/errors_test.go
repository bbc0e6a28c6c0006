package contact_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sengiku/studio/pkg/contact"
)

func TestStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		kind           contact.Kind
		providerStatus int
		expected       int
	}{
		{"validation", contact.KindValidation, 0, http.StatusBadRequest},
		{"configuration", contact.KindConfiguration, 0, http.StatusInternalServerError},
		{"internal", contact.KindInternal, 0, http.StatusInternalServerError},
		{"upstream with status", contact.KindUpstream, http.StatusUnprocessableEntity, http.StatusUnprocessableEntity},
		{"upstream without status", contact.KindUpstream, 0, http.StatusBadGateway},
		{"provider status ignored for validation", contact.KindValidation, 503, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, contact.StatusCode(tt.kind, tt.providerStatus))
		})
	}
}

func TestError_Response(t *testing.T) {
	t.Parallel()

	t.Run("non-upstream carries only the message", func(t *testing.T) {
		t.Parallel()

		e := &contact.Error{Kind: contact.KindInternal, Message: contact.MsgUnexpected, Err: errors.New("secret detail")}
		assert.Equal(t, contact.ErrorResponse{Error: "Unexpected error"}, e.Response())
	})

	t.Run("upstream carries provider details", func(t *testing.T) {
		t.Parallel()

		e := &contact.Error{Kind: contact.KindUpstream, Message: "Invalid from", ProviderStatus: 422, ProviderResponse: "raw"}
		assert.Equal(t, contact.UpstreamErrorResponse{Error: "Invalid from", ProviderStatus: 422, ProviderResponse: "raw"}, e.Response())
	})
}

func TestAsError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("handler: %w", &contact.Error{Kind: contact.KindValidation, Message: contact.MsgMissingFields, Err: contact.ErrMissingFields})

	e, ok := contact.AsError(wrapped)
	require.True(t, ok)
	assert.Equal(t, contact.KindValidation, e.Kind)
	assert.ErrorIs(t, wrapped, contact.ErrMissingFields)

	_, ok = contact.AsError(errors.New("plain"))
	assert.False(t, ok)
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "validation", contact.KindValidation.String())
	assert.Equal(t, "configuration", contact.KindConfiguration.String())
	assert.Equal(t, "upstream", contact.KindUpstream.String())
	assert.Equal(t, "internal", contact.KindInternal.String())
}
