package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVideoURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "short link rewritten to watch form",
			input:    "https://youtu.be/abc123",
			expected: "https://www.youtube.com/watch?v=abc123",
		},
		{
			name:     "short link query string stripped",
			input:    "https://youtu.be/abc123?t=5",
			expected: "https://www.youtube.com/watch?v=abc123",
		},
		{
			name:     "watch URL unchanged",
			input:    "https://www.youtube.com/watch?v=abc123",
			expected: "https://www.youtube.com/watch?v=abc123",
		},
		{
			name:     "whitespace trimmed",
			input:    "  https://www.youtube.com/watch?v=abc123  ",
			expected: "https://www.youtube.com/watch?v=abc123",
		},
		{
			name:     "unrelated URL returned trimmed",
			input:    " https://vimeo.com/123 ",
			expected: "https://vimeo.com/123",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeVideoURL(tt.input))
		})
	}
}

func TestNormalizeVideoURLIsIdempotent(t *testing.T) {
	inputs := []string{
		"https://youtu.be/abc123?t=5",
		"https://www.youtube.com/watch?v=abc123",
		"https://vimeo.com/123",
		"   https://youtu.be/xyz   ",
		"",
	}
	for _, input := range inputs {
		once := NormalizeVideoURL(input)
		assert.Equal(t, once, NormalizeVideoURL(once), "normalize must be idempotent for %q", input)
	}
}

func TestIsSupportedVideoURL(t *testing.T) {
	assert.True(t, IsSupportedVideoURL("https://www.youtube.com/watch?v=abc123"))
	assert.True(t, IsSupportedVideoURL("https://youtu.be/abc123"))
	assert.True(t, IsSupportedVideoURL("https://WWW.YOUTUBE.COM/watch?v=abc123"))
	assert.True(t, IsSupportedVideoURL("https://m.youtube.com/watch?v=abc123"))

	assert.False(t, IsSupportedVideoURL("https://vimeo.com/123"))
	assert.False(t, IsSupportedVideoURL("https://example.com/youtube"))
	assert.False(t, IsSupportedVideoURL(""))
}
