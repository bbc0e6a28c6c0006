package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sengiku/studio/pkg/sanitizer"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips script injection",
			input:    `<p>Hello</p><script>alert('xss')</script>`,
			expected: "Hello",
		},
		{
			name:     "strips formatting tags",
			input:    `<b>Ada</b> <i>Lovelace</i>`,
			expected: "Ada Lovelace",
		},
		{
			name:     "strips event handlers",
			input:    `<img src="x" onerror="alert('xss')">`,
			expected: "",
		},
		{
			name:     "strips javascript URLs",
			input:    `<a href="javascript:alert('xss')">click</a>`,
			expected: "click",
		},
		{
			name:     "keeps plain text",
			input:    "Need a landing page",
			expected: "Need a landing page",
		},
		{
			name:     "keeps line breaks",
			input:    "Hello\nthere",
			expected: "Hello\nthere",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.StripHTML(tt.input))
		})
	}
}

func TestStripAll(t *testing.T) {
	t.Parallel()

	name, message := "<b>Ada</b>", "<script>x</script>hi"
	sanitizer.StripAll(&name, &message, nil)

	assert.Equal(t, "Ada", name)
	assert.Equal(t, "hi", message)
}
