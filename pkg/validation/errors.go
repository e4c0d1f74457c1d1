package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors collects field-level validation errors. Insertion order is
// preserved so callers can point the user at the first failing field in
// form order.
type FieldErrors struct {
	order  []string
	errors map[string]string
}

// NewFieldErrors creates an empty error collection
func NewFieldErrors() *FieldErrors {
	return &FieldErrors{errors: make(map[string]string)}
}

// FromValidator builds FieldErrors from validator.ValidationErrors,
// used when gin binding fails on a request body.
func FromValidator(errs validator.ValidationErrors) *FieldErrors {
	fe := NewFieldErrors()
	for _, err := range errs {
		fe.Add(err.Field(), messageFor(err))
	}
	return fe
}

// Add records an error for a field. The first message per field wins.
func (fe *FieldErrors) Add(field, message string) {
	if _, exists := fe.errors[field]; exists {
		return
	}
	fe.order = append(fe.order, field)
	fe.errors[field] = message
}

// Has returns true if any errors were recorded
func (fe *FieldErrors) Has() bool {
	return len(fe.order) > 0
}

// Len returns the number of failing fields
func (fe *FieldErrors) Len() int {
	return len(fe.order)
}

// First returns the first failing field and its message, in insertion order.
func (fe *FieldErrors) First() (field, message string) {
	if len(fe.order) == 0 {
		return "", ""
	}
	return fe.order[0], fe.errors[fe.order[0]]
}

// Field returns the message for a specific field
func (fe *FieldErrors) Field(field string) (string, bool) {
	msg, ok := fe.errors[field]
	return msg, ok
}

// Fields returns the failing field names in insertion order
func (fe *FieldErrors) Fields() []string {
	out := make([]string, len(fe.order))
	copy(out, fe.order)
	return out
}

// Map returns the field -> message mapping for JSON responses
func (fe *FieldErrors) Map() map[string]string {
	out := make(map[string]string, len(fe.errors))
	for k, v := range fe.errors {
		out[k] = v
	}
	return out
}

// MarshalJSON serializes the field -> message mapping.
func (fe *FieldErrors) MarshalJSON() ([]byte, error) {
	return json.Marshal(fe.Map())
}

// Error implements the error interface
func (fe *FieldErrors) Error() string {
	var messages []string
	for _, field := range fe.order {
		messages = append(messages, fmt.Sprintf("%s: %s", field, fe.errors[field]))
	}
	return strings.Join(messages, "; ")
}

// messageFor returns a human-readable message for a validator error
func messageFor(err validator.FieldError) string {
	field := err.Field()
	param := err.Param()

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
