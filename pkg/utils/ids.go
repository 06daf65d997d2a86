package utils

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// NewOrderID generates a customer-facing order identifier such as
// "ORD-4F21A9". Six random hex characters keep the id short enough to read
// over the phone while making collisions across a single store negligible.
func NewOrderID() string {
	b := make([]byte, 3)
	_, _ = rand.Read(b)
	return fmt.Sprintf("ORD-%X", b)
}

// NormalizeWhatsAppPhone strips everything but digits and prefixes the
// Indian country code when given a bare 10-digit mobile number.
func NormalizeWhatsAppPhone(mobile string) string {
	var sb strings.Builder
	for _, r := range mobile {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	phone := sb.String()
	if len(phone) == 10 {
		phone = "91" + phone
	}
	return phone
}
