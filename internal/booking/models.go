package booking

import (
	"github.com/visitgeorgia/transfers/internal/currency"
	"github.com/visitgeorgia/transfers/internal/location"
	"github.com/visitgeorgia/transfers/internal/vehicle"
)

// Form is the user-entered booking request. It is transient: built
// from one submission attempt, serialized into the outbound message,
// then discarded. Nothing here is ever persisted server-side.
type Form struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	PickupLocation  string `json:"pickupLocation"`
	DropoffLocation string `json:"dropoffLocation"`
	PickupDate      string `json:"pickupDate"`
	PickupTime      string `json:"pickupTime"`
	NumPassengers   int    `json:"numPassengers"`
	Vehicle         string `json:"vehicle"`
	Currency        string `json:"currency"`
	FlightNumber    string `json:"flightNumber"`
	SpecialRequests string `json:"specialRequests"`
}

// ApplyDefaults fills the fields that always have a value in the form,
// so they can never fail validation.
func (f *Form) ApplyDefaults() {
	if f.NumPassengers <= 0 {
		f.NumPassengers = 1
	}
	if f.Vehicle == "" {
		f.Vehicle = string(vehicle.Default)
	}
	if f.Currency == "" {
		f.Currency = string(currency.Reference)
	}
}

// Pickup returns the parsed pickup location.
func (f *Form) Pickup() (location.Key, bool) {
	return location.Parse(f.PickupLocation)
}

// Dropoff returns the parsed dropoff location.
func (f *Form) Dropoff() (location.Key, bool) {
	return location.Parse(f.DropoffLocation)
}

// Tier returns the parsed vehicle tier, defaulting to sedan.
func (f *Form) Tier() vehicle.Tier {
	if t, ok := vehicle.Parse(f.Vehicle); ok {
		return t
	}
	return vehicle.Default
}

// Cur returns the currency the user was browsing in, defaulting to
// the reference currency. The estimated price in outbound messages is
// rendered in this currency.
func (f *Form) Cur() currency.Code {
	c, _ := currency.Parse(f.Currency)
	return c
}
