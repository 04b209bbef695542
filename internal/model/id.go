package model

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a random (version 4) UUID string.
func NewID() string {
	return uuid.NewString()
}

// Timestamp returns the current UTC time truncated to whole seconds, so the
// RFC 3339 form of every stored timestamp has the same length and sorts
// chronologically as text.
func Timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
