package utils

import "github.com/google/uuid"

// NewScanCode generates the opaque token encoded into a product's QR label.
// Immutable once assigned.
func NewScanCode() string {
	return uuid.New().String()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
