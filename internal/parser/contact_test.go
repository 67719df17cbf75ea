package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{"Plain email", "Contact: jane.doe@example.com or 555-123-4567", "jane.doe@example.com", true},
		{"Email with plus tag", "Reach me at dev+hiring@mail.example.org anytime", "dev+hiring@mail.example.org", true},
		{"First of several wins", "a@example.com b@example.com", "a@example.com", true},
		{"Subdomain", "ops@mail.internal.example.co.uk", "ops@mail.internal.example.co.uk", true},
		{"No email", "just some text without an address", "", false},
		{"Missing TLD", "broken@localhost", "", false},
		{"Empty text", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractEmail(tt.text)
			if !tt.found {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tt.expected, *result)
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{"Dashed groups", "Contact: jane.doe@example.com or 555-123-4567", "555-123-4567", true},
		{"Dotted groups", "call 555.123.4567 today", "555.123.4567", true},
		{"Parenthesized area code", "phone (555) 123-4567", "(555) 123-4567", true},
		{"Country code", "+1 555 123 4567", "+1 555 123 4567", true},
		{"Bare seven digits", "ext 123-4567", "123-4567", true},
		{"No phone", "no digits worth dialing here", "", false},
		{"Empty text", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractPhone(tt.text)
			if !tt.found {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tt.expected, *result)
		})
	}
}
