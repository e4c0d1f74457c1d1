package dispatch

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/visitgeorgia/transfers/internal/booking"
	"github.com/visitgeorgia/transfers/pkg/common"
	"github.com/visitgeorgia/transfers/pkg/validation"
)

type Handler struct {
	dispatcher *Dispatcher
}

func NewHandler(d *Dispatcher) *Handler {
	return &Handler{dispatcher: d}
}

type submitRequest struct {
	Kind string       `json:"kind" binding:"omitempty,oneof=chat email both"`
	Form booking.Form `json:"form"`
}

// Submit handles POST /bookings
func (h *Handler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			common.ErrorResponseWithData(c, http.StatusBadRequest, "Invalid request body",
				validation.FromValidator(verrs).Map())
			return
		}
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	kind := KindChat
	if req.Kind != "" {
		kind, _ = ParseKind(req.Kind)
	}

	result, err := h.dispatcher.Submit(c.Request.Context(), kind, &req.Form)

	switch {
	case result != nil && result.State == StateInvalid:
		common.ErrorResponseWithData(c, http.StatusUnprocessableEntity, "Validation failed", gin.H{
			"id":          result.ID,
			"fieldErrors": result.FieldErrors.Map(),
			"fields":      result.FieldErrors.Fields(),
		})
	case errors.Is(err, ErrEmailNotConfigured):
		common.ErrorResponse(c, http.StatusServiceUnavailable, "Email channel not configured")
	case errors.Is(err, ErrAlreadyInFlight):
		common.ErrorResponse(c, http.StatusConflict, "Identical submission already in flight")
	case err != nil:
		common.ErrorResponse(c, http.StatusBadGateway, "Booking submission failed")
	default:
		common.SuccessResponse(c, result)
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/bookings", h.Submit)
}
