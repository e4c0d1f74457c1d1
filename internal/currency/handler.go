package currency

import (
	"github.com/gin-gonic/gin"

	"github.com/visitgeorgia/transfers/pkg/common"
)

// Handler handles HTTP requests for currency
type Handler struct{}

// NewHandler creates a new currency handler
func NewHandler() *Handler {
	return &Handler{}
}

// List returns the supported currencies
func (h *Handler) List(c *gin.Context) {
	common.SuccessResponse(c, All())
}

// RegisterRoutes wires the currency endpoints onto a router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/currencies", h.List)
}
