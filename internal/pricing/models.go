package pricing

import (
	"errors"

	"github.com/visitgeorgia/transfers/internal/currency"
	"github.com/visitgeorgia/transfers/internal/vehicle"
)

// ErrRouteUnavailable means no direct transfer is offered for the
// requested pair. It is an expected outcome, not a system failure, and
// must never be collapsed into a zero price.
var ErrRouteUnavailable = errors.New("no transfer offered for this route")

// Record is the pricing entry for one directed origin->destination
// pair. Prices are authored in EUR; duration and distance are opaque
// display strings and do not depend on tier or currency.
type Record struct {
	Prices   map[vehicle.Tier]int
	Duration string
	Distance string
}

// Price returns the EUR price for a tier and whether the record
// carries one.
func (r Record) Price(t vehicle.Tier) (int, bool) {
	p, ok := r.Prices[t]
	return p, ok
}

// Quote is a resolved price for a route, tier and display currency.
type Quote struct {
	Amount    int           `json:"amount"`
	Currency  currency.Code `json:"currency"`
	Formatted string        `json:"formatted"`
	Duration  string        `json:"duration"`
	Distance  string        `json:"distance"`
}
