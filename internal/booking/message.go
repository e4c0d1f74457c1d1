package booking

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/visitgeorgia/transfers/internal/location"
	"github.com/visitgeorgia/transfers/internal/pricing"
	"github.com/visitgeorgia/transfers/internal/vehicle"
)

// Outbound messages are always rendered in English, whatever the
// active UI language: the operator reads them, not the customer.

// ChatMessage renders the full booking request as the fixed-structure
// chat handoff text. The flight and special-request sections appear
// only when the user filled them in; the estimated price line appears
// only when a price was resolved.
func (f *Form) ChatMessage(quote *pricing.Quote) string {
	var b strings.Builder

	b.WriteString("🚗 *NEW TRANSFER BOOKING REQUEST*\n\n")

	b.WriteString("👤 *Personal Details*\n")
	fmt.Fprintf(&b, "Name: %s\n", f.FullName)
	fmt.Fprintf(&b, "Email: %s\n", f.Email)
	fmt.Fprintf(&b, "Phone: %s\n\n", f.Phone)

	b.WriteString("📍 *Transfer Details*\n")
	fmt.Fprintf(&b, "From: %s\n", f.pickupName())
	fmt.Fprintf(&b, "To: %s\n", f.dropoffName())
	fmt.Fprintf(&b, "Date: %s\n", f.PickupDate)
	fmt.Fprintf(&b, "Time: %s\n\n", f.PickupTime)

	b.WriteString("🚐 *Vehicle & Passengers*\n")
	fmt.Fprintf(&b, "Passengers: %d\n", f.NumPassengers)
	fmt.Fprintf(&b, "Vehicle: %s\n", f.Tier().MessageName())
	if quote != nil {
		fmt.Fprintf(&b, "Estimated Price: %s\n", quote.Formatted)
	}
	b.WriteString("\n")

	if f.FlightNumber != "" {
		b.WriteString("✈️ *Flight Details*\n")
		fmt.Fprintf(&b, "Flight Number: %s\n\n", f.FlightNumber)
	}

	if f.SpecialRequests != "" {
		b.WriteString("📝 *Special Requests*\n")
		fmt.Fprintf(&b, "%s\n\n", f.SpecialRequests)
	}

	b.WriteString("Please confirm availability and final price. Thank you!")

	return b.String()
}

// EmailPayload renders the same data as discrete template fields.
// Email templates have fixed slots, so missing optionals get explicit
// placeholders instead of omitted keys.
func (f *Form) EmailPayload(quote *pricing.Quote) map[string]string {
	price := "Not calculated"
	if quote != nil {
		price = quote.Formatted
	}
	flight := f.FlightNumber
	if flight == "" {
		flight = "Not provided"
	}
	requests := f.SpecialRequests
	if requests == "" {
		requests = "None"
	}

	return map[string]string{
		"from_name":        f.FullName,
		"from_email":       f.Email,
		"from_phone":       f.Phone,
		"pickup_location":  f.pickupName(),
		"dropoff_location": f.dropoffName(),
		"pickup_date":      f.PickupDate,
		"pickup_time":      f.PickupTime,
		"num_passengers":   strconv.Itoa(f.NumPassengers),
		"vehicle_type":     f.Tier().MessageName(),
		"estimated_price":  price,
		"flight_number":    flight,
		"special_requests": requests,
	}
}

// QuoteMessage is the short handoff text used by the price calculator,
// before the user has filled in the full booking form.
func QuoteMessage(pickup, dropoff location.Key, tier vehicle.Tier, quote *pricing.Quote) string {
	return fmt.Sprintf(`Hi Rati! I'd like to book a transfer:

From: %s
To: %s
Vehicle: %s
Price: %s

Please confirm availability. Thank you!`,
		pickup.MessageName(), dropoff.MessageName(), tier.MessageName(), quote.Formatted)
}

// WhatsAppLink builds the chat handoff URI for a prepared message.
// The caller performs the actual navigation; this stays a pure
// function of its inputs.
func WhatsAppLink(phone, message string) string {
	// url.QueryEscape form-encodes spaces as "+"; the messaging app
	// expects percent-encoding throughout.
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, encoded)
}

func (f *Form) pickupName() string {
	if k, ok := f.Pickup(); ok {
		return k.MessageName()
	}
	return f.PickupLocation
}

func (f *Form) dropoffName() string {
	if k, ok := f.Dropoff(); ok {
		return k.MessageName()
	}
	return f.DropoffLocation
}
