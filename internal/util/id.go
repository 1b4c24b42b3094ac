package util

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a random URL-safe id (a UUIDv4 without dashes).
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
