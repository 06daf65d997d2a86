package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderID(t *testing.T) {
	id := NewOrderID()
	assert.True(t, strings.HasPrefix(id, "ORD-"))
	assert.Len(t, id, 10)

	// Not a uniqueness proof, just a sanity check on the randomness wiring.
	assert.NotEqual(t, id, NewOrderID())
}

func TestNormalizeWhatsAppPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9876543210", "919876543210"},
		{"98765-43210", "919876543210"},
		{"+91 98765 43210", "919876543210"},
		{"919876543210", "919876543210"},
		{"02212345678", "02212345678"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeWhatsAppPhone(tt.in), "input %q", tt.in)
	}
}
