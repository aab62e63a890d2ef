package uuid

import (
	"github.com/google/uuid"
)

// NewRunID returns the id that ties together the log lines of one run.
func NewRunID() string {
	return uuid.NewString()
}
