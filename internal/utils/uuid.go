package utils

import "github.com/google/uuid"

// NewRequestID returns a time-ordered UUIDv7, falling back to a random
// UUIDv4 if the clock source fails.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
