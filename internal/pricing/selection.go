package pricing

import "github.com/visitgeorgia/transfers/internal/location"

// Selection tracks an in-progress origin/destination choice. Changing
// the origin clears a destination that is no longer reachable, so the
// destination can never point at a pair without a table entry left
// over from an earlier origin.
type Selection struct {
	svc         *Service
	origin      location.Key
	destination location.Key
}

// NewSelection creates an empty selection backed by the given service.
func NewSelection(svc *Service) *Selection {
	return &Selection{svc: svc}
}

// Origin returns the currently selected origin, empty when unset.
func (s *Selection) Origin() location.Key {
	return s.origin
}

// Destination returns the currently selected destination, empty when unset.
func (s *Selection) Destination() location.Key {
	return s.destination
}

// SetOrigin selects a new origin. A previously selected destination is
// reset to unset if it is not reachable from the new origin.
func (s *Selection) SetOrigin(origin location.Key) {
	s.origin = origin
	if s.destination == "" {
		return
	}
	if !s.svc.HasRoute(origin, s.destination) {
		s.destination = ""
	}
}

// SetDestination selects a destination. It is rejected (and the
// current value kept) when the origin is unset or no transfer is
// offered for the pair.
func (s *Selection) SetDestination(dest location.Key) bool {
	if s.origin == "" {
		return false
	}
	if !s.svc.HasRoute(s.origin, dest) {
		return false
	}
	s.destination = dest
	return true
}

// Complete reports whether both ends of the trip are selected.
func (s *Selection) Complete() bool {
	return s.origin != "" && s.destination != ""
}
