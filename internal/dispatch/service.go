package dispatch

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/visitgeorgia/transfers/internal/booking"
	"github.com/visitgeorgia/transfers/internal/pricing"
	"github.com/visitgeorgia/transfers/pkg/email"
	"github.com/visitgeorgia/transfers/pkg/logger"
)

// Dispatcher validates booking forms and submits them over the chat
// and email channels. It is safe for concurrent use.
type Dispatcher struct {
	pricing *pricing.Service
	sender  email.Sender
	phone   string

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewDispatcher(pricingSvc *pricing.Service, sender email.Sender, whatsAppPhone string) *Dispatcher {
	return &Dispatcher{
		pricing:  pricingSvc,
		sender:   sender,
		phone:    whatsAppPhone,
		inFlight: make(map[string]struct{}),
	}
}

// Submit runs a booking form through validation and dispatches it over
// the requested channel. For KindBoth the email is sent first and a
// delivery failure aborts the whole submission, so the caller never
// opens a chat for a request that was not recorded.
func (d *Dispatcher) Submit(ctx context.Context, kind Kind, form *booking.Form) (*Result, error) {
	id := uuid.New()
	log := logger.Get().With(
		zap.String("submission_id", id.String()),
		zap.String("kind", string(kind)),
	)

	form.ApplyDefaults()

	result := &Result{ID: id, State: StateValidating}

	if errs := form.Validate(); errs.Has() {
		result.State = StateInvalid
		result.FieldErrors = errs
		submissionsTotal.WithLabelValues(string(kind), string(StateInvalid)).Inc()
		log.Info("booking rejected by validation", zap.Int("field_errors", errs.Len()))
		return result, nil
	}

	if kind != KindChat && !d.sender.Configured() {
		result.State = StateFailed
		submissionsTotal.WithLabelValues(string(kind), string(StateFailed)).Inc()
		return result, ErrEmailNotConfigured
	}

	fp := fingerprint(kind, form)
	if !d.acquire(fp) {
		result.State = StateFailed
		return result, ErrAlreadyInFlight
	}
	defer d.release(fp)

	result.State = StateSubmitting

	quote := d.resolveQuote(form, log)

	if kind != KindChat {
		if err := d.sender.Send(ctx, form.EmailPayload(quote)); err != nil {
			emailSendFailures.Inc()
			result.State = StateFailed
			submissionsTotal.WithLabelValues(string(kind), string(StateFailed)).Inc()
			log.Error("email delivery failed", zap.Error(err))
			return result, fmt.Errorf("send booking email: %w", err)
		}
	}

	if kind != KindEmail {
		result.ChatURL = booking.WhatsAppLink(d.phone, form.ChatMessage(quote))
	}

	result.State = StateSucceeded
	submissionsTotal.WithLabelValues(string(kind), string(StateSucceeded)).Inc()
	log.Info("booking submitted",
		zap.String("pickup", form.PickupLocation),
		zap.String("dropoff", form.DropoffLocation),
	)
	return result, nil
}

// resolveQuote looks up the estimated price for the form's route, in
// the currency the user was browsing in. A missing route is not an
// error here: the submission goes out with the price marked as not
// calculated.
func (d *Dispatcher) resolveQuote(form *booking.Form, log *zap.Logger) *pricing.Quote {
	origin, ok := form.Pickup()
	if !ok {
		return nil
	}
	dest, ok := form.Dropoff()
	if !ok {
		return nil
	}

	sel := pricing.NewSelection(d.pricing)
	sel.SetOrigin(origin)
	if !sel.SetDestination(dest) {
		log.Warn("no price for requested route",
			zap.String("pickup", form.PickupLocation),
			zap.String("dropoff", form.DropoffLocation),
		)
		return nil
	}

	quote, err := d.pricing.ResolvePrice(sel.Origin(), sel.Destination(), form.Tier(), form.Cur())
	if err != nil {
		return nil
	}
	return quote
}

func (d *Dispatcher) acquire(fp string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.inFlight[fp]; exists {
		return false
	}
	d.inFlight[fp] = struct{}{}
	return true
}

func (d *Dispatcher) release(fp string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.inFlight, fp)
}

func fingerprint(kind Kind, form *booking.Form) string {
	return strings.Join([]string{
		string(kind),
		strings.ToLower(strings.TrimSpace(form.Email)),
		form.PickupLocation,
		form.DropoffLocation,
		form.PickupDate,
		form.PickupTime,
	}, "|")
}
