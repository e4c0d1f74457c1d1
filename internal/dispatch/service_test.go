package dispatch

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/visitgeorgia/transfers/internal/booking"
	"github.com/visitgeorgia/transfers/internal/pricing"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, params map[string]string) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *mockSender) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func testForm() *booking.Form {
	return &booking.Form{
		FullName:        "John Smith",
		Email:           "john@example.com",
		Phone:           "+995 514 048 822",
		PickupLocation:  "tbilisi-airport",
		DropoffLocation: "kazbegi",
		PickupDate:      "2026-10-01",
		PickupTime:      "14:30",
	}
}

func newTestDispatcher(sender *mockSender) *Dispatcher {
	return NewDispatcher(pricing.NewService(), sender, "995514048822")
}

func TestSubmitChatSucceeds(t *testing.T) {
	sender := new(mockSender)
	d := newTestDispatcher(sender)

	result, err := d.Submit(context.Background(), KindChat, testForm())
	require.NoError(t, err)

	assert.Equal(t, StateSucceeded, result.State)
	assert.True(t, strings.HasPrefix(result.ChatURL, "https://wa.me/995514048822?text="))
	assert.Contains(t, result.ChatURL, "%E2%82%AC95") // €95 from the route table
	sender.AssertNotCalled(t, "Send")
}

func TestSubmitInvalidForm(t *testing.T) {
	sender := new(mockSender)
	d := newTestDispatcher(sender)

	result, err := d.Submit(context.Background(), KindChat, &booking.Form{})
	require.NoError(t, err)

	assert.Equal(t, StateInvalid, result.State)
	require.NotNil(t, result.FieldErrors)
	assert.Equal(t, 7, result.FieldErrors.Len())
	assert.Empty(t, result.ChatURL)
	sender.AssertNotCalled(t, "Send")
}

func TestSubmitEmailRefusedWhenUnconfigured(t *testing.T) {
	for _, kind := range []Kind{KindEmail, KindBoth} {
		t.Run(string(kind), func(t *testing.T) {
			sender := new(mockSender)
			sender.On("Configured").Return(false)
			d := newTestDispatcher(sender)

			result, err := d.Submit(context.Background(), kind, testForm())

			assert.ErrorIs(t, err, ErrEmailNotConfigured)
			assert.Equal(t, StateFailed, result.State)
			sender.AssertNotCalled(t, "Send")
		})
	}
}

func TestSubmitRendersPriceInFormCurrency(t *testing.T) {
	t.Run("email payload", func(t *testing.T) {
		sender := new(mockSender)
		sender.On("Configured").Return(true)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(params map[string]string) bool {
			// 95 EUR * 2.95 = 280.25, rounded, lari symbol suffixed
			return params["estimated_price"] == "280₾"
		})).Return(nil)
		d := newTestDispatcher(sender)

		form := testForm()
		form.Currency = "GEL"
		result, err := d.Submit(context.Background(), KindEmail, form)
		require.NoError(t, err)

		assert.Equal(t, StateSucceeded, result.State)
		sender.AssertExpectations(t)
	})

	t.Run("chat message", func(t *testing.T) {
		d := newTestDispatcher(new(mockSender))

		form := testForm()
		form.Currency = "USD"
		result, err := d.Submit(context.Background(), KindChat, form)
		require.NoError(t, err)

		// 95 * 1.08 = 102.6, rounded to 103, dollar sign prefixed
		assert.Contains(t, result.ChatURL, "%24103")
	})
}

func TestSubmitEmailSendsPayload(t *testing.T) {
	sender := new(mockSender)
	sender.On("Configured").Return(true)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(params map[string]string) bool {
		return params["from_name"] == "John Smith" &&
			params["estimated_price"] == "€95" &&
			params["flight_number"] == "Not provided"
	})).Return(nil)
	d := newTestDispatcher(sender)

	result, err := d.Submit(context.Background(), KindEmail, testForm())
	require.NoError(t, err)

	assert.Equal(t, StateSucceeded, result.State)
	assert.Empty(t, result.ChatURL)
	sender.AssertExpectations(t)
}

func TestSubmitBothEmailFirstFailFast(t *testing.T) {
	sender := new(mockSender)
	sender.On("Configured").Return(true)
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("relay rejected"))
	d := newTestDispatcher(sender)

	result, err := d.Submit(context.Background(), KindBoth, testForm())

	require.Error(t, err)
	assert.Equal(t, StateFailed, result.State)
	assert.Empty(t, result.ChatURL, "no chat URL when the email leg failed")
}

func TestSubmitBothSucceeds(t *testing.T) {
	sender := new(mockSender)
	sender.On("Configured").Return(true)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	d := newTestDispatcher(sender)

	result, err := d.Submit(context.Background(), KindBoth, testForm())
	require.NoError(t, err)

	assert.Equal(t, StateSucceeded, result.State)
	assert.NotEmpty(t, result.ChatURL)
}

func TestSubmitUnpriceableRouteStillGoesOut(t *testing.T) {
	sender := new(mockSender)
	d := newTestDispatcher(sender)

	form := testForm()
	form.PickupLocation = "kazbegi"
	form.DropoffLocation = "kazbegi"

	result, err := d.Submit(context.Background(), KindChat, form)
	require.NoError(t, err)

	assert.Equal(t, StateSucceeded, result.State)
	assert.NotContains(t, result.ChatURL, "Estimated%20Price")
}

func TestSubmitDeduplicatesInFlight(t *testing.T) {
	sender := new(mockSender)
	sender.On("Configured").Return(true)

	release := make(chan struct{})
	started := make(chan struct{})
	sender.On("Send", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(nil).Once()

	d := newTestDispatcher(sender)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := d.Submit(context.Background(), KindEmail, testForm())
		assert.NoError(t, err)
	}()

	<-started
	_, err := d.Submit(context.Background(), KindEmail, testForm())
	assert.ErrorIs(t, err, ErrAlreadyInFlight)

	close(release)
	wg.Wait()

	// The fingerprint is released after the first submit finishes.
	sender.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
	result, err := d.Submit(context.Background(), KindEmail, testForm())
	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, result.State)
}
