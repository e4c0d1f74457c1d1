package dispatch

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/visitgeorgia/transfers/internal/booking"
	"github.com/visitgeorgia/transfers/internal/pricing"
)

func setupRouter(sender *mockSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(NewDispatcher(pricing.NewService(), sender, "995514048822"))
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postBooking(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitEndpointChat(t *testing.T) {
	router := setupRouter(new(mockSender))

	w := postBooking(t, router, map[string]interface{}{
		"kind": "chat",
		"form":    testForm(),
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Data    Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, StateSucceeded, resp.Data.State)
	assert.Contains(t, resp.Data.ChatURL, "https://wa.me/995514048822?text=")
}

func TestSubmitEndpointValidationFailure(t *testing.T) {
	router := setupRouter(new(mockSender))

	w := postBooking(t, router, map[string]interface{}{
		"kind": "chat",
		"form":    &booking.Form{FullName: "John Smith"},
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			FieldErrors map[string]string `json:"fieldErrors"`
			Fields      []string          `json:"fields"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotContains(t, resp.Data.FieldErrors, "fullName")
	assert.Equal(t, "email", resp.Data.Fields[0])
}

func TestSubmitEndpointUnknownChannel(t *testing.T) {
	router := setupRouter(new(mockSender))

	w := postBooking(t, router, map[string]interface{}{
		"kind": "carrier-pigeon",
		"form":    testForm(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitEndpointEmailNotConfigured(t *testing.T) {
	sender := new(mockSender)
	sender.On("Configured").Return(false)
	router := setupRouter(sender)

	w := postBooking(t, router, map[string]interface{}{
		"kind": "email",
		"form":    testForm(),
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSubmitEndpointEmailFailure(t *testing.T) {
	sender := new(mockSender)
	sender.On("Configured").Return(true)
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("relay rejected"))
	router := setupRouter(sender)

	w := postBooking(t, router, map[string]interface{}{
		"kind": "email",
		"form":    testForm(),
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
