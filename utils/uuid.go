package utils

import (
	"github.com/google/uuid"
)

// NewEventID returns a random UUID identifying a published event
func NewEventID() string {
	return uuid.NewString()
}
