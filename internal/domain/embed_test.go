package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbedURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://www.youtube.com/watch?v=XYZ", "https://www.youtube.com/embed/XYZ"},
		{"https://youtu.be/XYZ", "https://www.youtube.com/embed/XYZ"},
		{"https://vimeo.com/123", "https://vimeo.com/123"},
		{"https://example.com/doc.pdf", "https://example.com/doc.pdf"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, EmbedURL(tc.in), "input %q", tc.in)
	}
}

func TestIsAdminPath(t *testing.T) {
	assert.True(t, IsAdminPath("/manage"))
	for _, p := range []string{"/", "/manage/", "/Manage", "/manage/x", "/search", ""} {
		assert.False(t, IsAdminPath(p), "path %q", p)
	}
}
