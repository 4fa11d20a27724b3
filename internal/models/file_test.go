package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaType_Valid(t *testing.T) {
	tests := []struct {
		in   MediaType
		want bool
	}{
		{MediaVideo, true},
		{MediaPDF, true},
		{MediaImage, true},
		{"other", false},
		{"", false},
		{"VIDEO", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.in.Valid(), "media type %q", tc.in)
	}
}
