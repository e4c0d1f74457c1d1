// Package email delivers booking request payloads through a
// transactional email relay. Delivery is best-effort: a failed send is
// surfaced to the caller and never retried silently.
package email

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when a send is attempted without the
// provider credentials in place. Callers are expected to check
// Configured first and disable the channel instead.
var ErrNotConfigured = errors.New("email provider is not configured")

// Sender delivers one booking request rendered as a template field map.
type Sender interface {
	// Send delivers the field map to the configured recipient through
	// the provider's named template.
	Send(ctx context.Context, params map[string]string) error

	// Configured reports whether every credential the provider needs
	// is present. When false, Send must not be attempted.
	Configured() bool
}
