// AngelaMos | 2026
// id.go

package core

import (
	"fmt"

	"github.com/google/uuid"
)

func NewID() string {
	return uuid.New().String()
}

// ParseID validates an externally supplied identifier before it reaches a
// query. Placeholder values sent by sloppy clients ("undefined", "null")
// are rejected the same as any other malformed input; a well-formed UUID
// that matches nothing surfaces later as ErrNotFound instead.
func ParseID(id string) (string, error) {
	switch id {
	case "", "undefined", "null":
		return "", fmt.Errorf("parse id %q: %w", id, ErrInvalidID)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("parse id %q: %w", id, ErrInvalidID)
	}

	return parsed.String(), nil
}
