package pricing

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/visitgeorgia/transfers/internal/currency"
	"github.com/visitgeorgia/transfers/internal/location"
	"github.com/visitgeorgia/transfers/internal/vehicle"
	"github.com/visitgeorgia/transfers/pkg/common"
	"github.com/visitgeorgia/transfers/pkg/i18n"
)

// ChatLinkFunc builds the chat handoff URI for a resolved quote. The
// message rendering lives with the booking package; the composition
// root wires it in here.
type ChatLinkFunc func(origin, dest location.Key, tier vehicle.Tier, quote *Quote) string

// Handler handles HTTP requests for route pricing
type Handler struct {
	service  *Service
	chatLink ChatLinkFunc
}

// NewHandler creates a new pricing handler. chatLink may be nil, in
// which case quote responses carry no handoff URL.
func NewHandler(service *Service, chatLink ChatLinkFunc) *Handler {
	return &Handler{service: service, chatLink: chatLink}
}

// destinationResponse is one reachable destination in the UI language
type destinationResponse struct {
	Key  location.Key `json:"key"`
	Name string       `json:"name"`
}

// quoteResponse is a resolved quote plus the ready-made chat handoff
// link for booking it directly.
type quoteResponse struct {
	*Quote
	ChatURL string `json:"chatUrl,omitempty"`
}

// Destinations returns the destinations reachable from an origin
func (h *Handler) Destinations(c *gin.Context) {
	origin, ok := location.Parse(c.Param("from"))
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "unknown origin location")
		return
	}
	lang := i18n.ParseOrDefault(c.Query("lang"))

	dests := h.service.DestinationsFrom(origin)
	out := make([]destinationResponse, len(dests))
	for i, d := range dests {
		out[i] = destinationResponse{Key: d, Name: d.Name(lang)}
	}
	common.SuccessResponse(c, out)
}

// Quote resolves the price for from/to/vehicle/currency query params
func (h *Handler) Quote(c *gin.Context) {
	origin, ok := location.Parse(c.Query("from"))
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "unknown origin location")
		return
	}
	dest, ok := location.Parse(c.Query("to"))
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "unknown destination location")
		return
	}

	tier := vehicle.Default
	if v := c.Query("vehicle"); v != "" {
		if tier, ok = vehicle.Parse(v); !ok {
			common.ErrorResponse(c, http.StatusBadRequest, "unknown vehicle tier")
			return
		}
	}

	cur := currency.Reference
	if v := c.Query("currency"); v != "" {
		if cur, ok = currency.Parse(v); !ok {
			common.ErrorResponse(c, http.StatusBadRequest, "unsupported currency")
			return
		}
	}

	quote, err := h.service.ResolvePrice(origin, dest, tier, cur)
	if err != nil {
		if errors.Is(err, ErrRouteUnavailable) {
			common.ErrorResponse(c, http.StatusNotFound, "no transfer offered for this route")
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to resolve price")
		return
	}

	resp := quoteResponse{Quote: quote}
	if h.chatLink != nil {
		resp.ChatURL = h.chatLink(origin, dest, tier, quote)
	}
	common.SuccessResponse(c, resp)
}

// RegisterRoutes wires the pricing endpoints onto a router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/routes/:from", h.Destinations)
	rg.GET("/quote", h.Quote)
}
