package pricing

import (
	"math"

	"go.uber.org/zap"

	"github.com/visitgeorgia/transfers/internal/currency"
	"github.com/visitgeorgia/transfers/internal/location"
	"github.com/visitgeorgia/transfers/internal/vehicle"
	"github.com/visitgeorgia/transfers/pkg/logger"
)

// Service resolves transfer prices from the static route table.
type Service struct {
	table    map[location.Key]map[location.Key]Record
	fallback map[location.Key]map[location.Key]int
}

// NewService creates a pricing service backed by the built-in tables.
func NewService() *Service {
	return &Service{
		table:    routeTable,
		fallback: sedanBaseTable,
	}
}

// Lookup fetches the pricing record for a directed pair. The second
// return value is false when no direct transfer is offered; callers
// must treat that as "unavailable", not as a zero price.
func (s *Service) Lookup(origin, dest location.Key) (Record, bool) {
	r, ok := s.table[origin][dest]
	return r, ok
}

// HasRoute reports whether a direct transfer is offered for the pair,
// by either table.
func (s *Service) HasRoute(origin, dest location.Key) bool {
	if _, ok := s.table[origin][dest]; ok {
		return true
	}
	_, ok := s.fallback[origin][dest]
	return ok
}

// DestinationsFrom returns the destinations reachable from an origin,
// in catalog order. Destination lists are always origin-scoped.
func (s *Service) DestinationsFrom(origin location.Key) []location.Key {
	reachable := s.table[origin]
	out := make([]location.Key, 0, len(reachable))
	for _, k := range location.All() {
		if _, ok := reachable[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// ResolvePrice resolves the displayed price for a route, tier and
// currency. Returns ErrRouteUnavailable when no entry exists for the
// pair. Duration and distance pass through from the record unchanged.
func (s *Service) ResolvePrice(origin, dest location.Key, tier vehicle.Tier, cur currency.Code) (*Quote, error) {
	record, ok := s.Lookup(origin, dest)
	if ok {
		priceEUR, ok := record.Price(tier)
		if !ok {
			return nil, ErrRouteUnavailable
		}
		return s.quote(priceEUR, cur, record.Duration, record.Distance), nil
	}

	// Deprecated sedan-base path, kept only for pairs the canonical
	// table does not cover.
	base, ok := s.fallback[origin][dest]
	if !ok {
		return nil, ErrRouteUnavailable
	}
	logger.Warn("price resolved from deprecated sedan-base table",
		zap.String("origin", string(origin)),
		zap.String("destination", string(dest)),
		zap.String("tier", string(tier)))

	priceEUR := int(math.Round(float64(base) * tier.Multiplier()))
	return s.quote(priceEUR, cur, "", ""), nil
}

func (s *Service) quote(priceEUR int, cur currency.Code, duration, distance string) *Quote {
	amount := currency.Convert(priceEUR, cur)
	return &Quote{
		Amount:    amount,
		Currency:  cur,
		Formatted: currency.Format(amount, cur),
		Duration:  duration,
		Distance:  distance,
	}
}
