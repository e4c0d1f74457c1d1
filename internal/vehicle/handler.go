package vehicle

import (
	"github.com/gin-gonic/gin"

	"github.com/visitgeorgia/transfers/pkg/common"
	"github.com/visitgeorgia/transfers/pkg/i18n"
)

// Handler handles HTTP requests for vehicle tiers
type Handler struct{}

// NewHandler creates a new vehicle handler
func NewHandler() *Handler {
	return &Handler{}
}

type tierResponse struct {
	Key      Tier   `json:"key"`
	Name     string `json:"name"`
	Capacity string `json:"capacity"`
}

// List returns the vehicle tiers in capacity order
func (h *Handler) List(c *gin.Context) {
	lang := i18n.ParseOrDefault(c.Query("lang"))

	tiers := Tiers()
	out := make([]tierResponse, len(tiers))
	for i, t := range tiers {
		out[i] = tierResponse{Key: t, Name: t.Name(lang), Capacity: t.CapacityLabel()}
	}
	common.SuccessResponse(c, out)
}

// RegisterRoutes wires the vehicle endpoints onto a router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/vehicles", h.List)
}
