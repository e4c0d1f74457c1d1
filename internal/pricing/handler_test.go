package pricing

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visitgeorgia/transfers/internal/location"
	"github.com/visitgeorgia/transfers/internal/vehicle"
)

func setupRouter(chatLink ChatLinkFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(NewService(), chatLink)
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestQuoteEndpoint(t *testing.T) {
	chatLink := func(origin, dest location.Key, tier vehicle.Tier, quote *Quote) string {
		return fmt.Sprintf("https://wa.me/995514048822?text=%s-%s-%s-%s", origin, dest, tier, quote.Formatted)
	}
	router := setupRouter(chatLink)

	w := get(t, router, "/api/v1/quote?from=tbilisi-airport&to=kazbegi&vehicle=sedan&currency=GEL")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Amount    int    `json:"amount"`
			Formatted string `json:"formatted"`
			Duration  string `json:"duration"`
			ChatURL   string `json:"chatUrl"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 280, resp.Data.Amount)
	assert.Equal(t, "280₾", resp.Data.Formatted)
	assert.Equal(t, "3h", resp.Data.Duration)
	assert.Equal(t, "https://wa.me/995514048822?text=tbilisi-airport-kazbegi-sedan-280₾", resp.Data.ChatURL)
}

func TestQuoteEndpointWithoutChatLink(t *testing.T) {
	router := setupRouter(nil)

	w := get(t, router, "/api/v1/quote?from=tbilisi-airport&to=kazbegi")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "chatUrl")
}

func TestQuoteEndpointUnavailableRoute(t *testing.T) {
	router := setupRouter(nil)

	w := get(t, router, "/api/v1/quote?from=kazbegi&to=kazbegi")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuoteEndpointUnknownParams(t *testing.T) {
	router := setupRouter(nil)

	for _, path := range []string{
		"/api/v1/quote?from=atlantis&to=kazbegi",
		"/api/v1/quote?from=tbilisi-airport&to=atlantis",
		"/api/v1/quote?from=tbilisi-airport&to=kazbegi&vehicle=hovercraft",
		"/api/v1/quote?from=tbilisi-airport&to=kazbegi&currency=BTC",
	} {
		w := get(t, router, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestDestinationsEndpoint(t *testing.T) {
	router := setupRouter(nil)

	w := get(t, router, "/api/v1/routes/tbilisi-airport?lang=ru")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			Key  string `json:"key"`
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 9, "every other location is reachable from the airport")
	assert.Equal(t, "tbilisi-city", resp.Data[0].Key)
	assert.Equal(t, "Тбилиси город", resp.Data[0].Name)
}
