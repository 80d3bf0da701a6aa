package shared

import "github.com/google/uuid"

// NewID returns an opaque identifier for a new record.
func NewID() string {
	return uuid.NewString()
}
