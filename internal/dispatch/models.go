package dispatch

import (
	"errors"

	"github.com/google/uuid"

	"github.com/visitgeorgia/transfers/pkg/validation"
)

// Kind selects the submission channel for a booking request.
type Kind string

const (
	KindChat  Kind = "chat"
	KindEmail Kind = "email"
	KindBoth  Kind = "both"
)

func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindChat, KindEmail, KindBoth:
		return Kind(s), true
	}
	return "", false
}

// State tracks a submission through its lifecycle. A submission moves
// Idle -> Validating -> Invalid, or Idle -> Validating -> Submitting ->
// Succeeded | Failed. Terminal states are Invalid, Succeeded and Failed.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateInvalid    State = "invalid"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

var (
	ErrEmailNotConfigured = errors.New("email channel not configured")
	ErrAlreadyInFlight    = errors.New("identical submission already in flight")
)

// Result is the terminal outcome of a Submit call.
type Result struct {
	ID          uuid.UUID               `json:"id"`
	State       State                   `json:"state"`
	FieldErrors *validation.FieldErrors `json:"fieldErrors,omitempty"`
	ChatURL     string                  `json:"chatUrl,omitempty"`
}
