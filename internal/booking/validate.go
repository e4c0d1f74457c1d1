package booking

import (
	"regexp"
	"strings"

	"github.com/visitgeorgia/transfers/pkg/validation"
)

var (
	// Basic local@domain.tld shape; anything stricter rejects real
	// addresses.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Permissive: optional leading +, then digits, spaces, hyphens,
	// parentheses.
	phonePattern = regexp.MustCompile(`^[+]?[\d\s\-()]+$`)
)

// Validate checks the form and returns every violated field in form
// order, so the caller can focus the first failing field
// deterministically. Vehicle and passenger count carry defaults and
// never fail.
func (f *Form) Validate() *validation.FieldErrors {
	errs := validation.NewFieldErrors()

	if strings.TrimSpace(f.FullName) == "" {
		errs.Add("fullName", "fullName is required")
	}

	switch {
	case strings.TrimSpace(f.Email) == "":
		errs.Add("email", "email is required")
	case !emailPattern.MatchString(f.Email):
		errs.Add("email", "email must be a valid email address")
	}

	switch {
	case strings.TrimSpace(f.Phone) == "":
		errs.Add("phone", "phone is required")
	case !phonePattern.MatchString(f.Phone):
		errs.Add("phone", "phone must be a valid phone number")
	}

	if f.PickupLocation == "" {
		errs.Add("pickupLocation", "pickupLocation is required")
	} else if _, ok := f.Pickup(); !ok {
		errs.Add("pickupLocation", "pickupLocation is not a known location")
	}

	if f.DropoffLocation == "" {
		errs.Add("dropoffLocation", "dropoffLocation is required")
	} else if _, ok := f.Dropoff(); !ok {
		errs.Add("dropoffLocation", "dropoffLocation is not a known location")
	}

	if f.PickupDate == "" {
		errs.Add("pickupDate", "pickupDate is required")
	}
	if f.PickupTime == "" {
		errs.Add("pickupTime", "pickupTime is required")
	}

	return errs
}
