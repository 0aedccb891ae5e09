package store

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when no item exists for a given id, including
// when an item vanished between a fetch and a later save.
var ErrNotFound = errors.New("item not found")

// FieldError is one field-level validation message.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports one or more field-level validation failures on
// create or update. The store is the single source of truth for the
// validation rules, including question uniqueness.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface by joining the field messages.
func (e *ValidationError) Error() string {
	messages := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		messages[i] = f.Message
	}
	return strings.Join(messages, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}
