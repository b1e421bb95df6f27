package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Plain digits",
			input:    "9876543210",
			expected: "9876543210",
		},
		{
			name:     "With country code and plus",
			input:    "+919876543210",
			expected: "919876543210",
		},
		{
			name:     "With dashes and spaces",
			input:    "98765 432-10",
			expected: "9876543210",
		},
		{
			name:     "Empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePhone(tt.input))
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		valid      bool
		normalized string
	}{
		{
			name:       "Valid 10 digits",
			input:      "9876543210",
			valid:      true,
			normalized: "9876543210",
		},
		{
			name:       "Valid 12 digits with plus",
			input:      "+919876543210",
			valid:      true,
			normalized: "919876543210",
		},
		{
			name:  "Too short",
			input: "12345",
			valid: false,
		},
		{
			name:  "Too long",
			input: "1234567890123456",
			valid: false,
		},
		{
			name:  "Letters only",
			input: "notaphone",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, normalized, err := ValidatePhone(tt.input)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.NoError(t, err)
				assert.Equal(t, tt.normalized, normalized)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestPagination(t *testing.T) {
	page, limit, skip := Pagination(0, 0, 20, 100)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, skip)

	page, limit, skip = Pagination(3, 500, 20, 100)
	assert.Equal(t, 3, page)
	assert.Equal(t, 100, limit)
	assert.Equal(t, 200, skip)
}
