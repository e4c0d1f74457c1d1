package location

import (
	"github.com/gin-gonic/gin"

	"github.com/visitgeorgia/transfers/pkg/common"
	"github.com/visitgeorgia/transfers/pkg/i18n"
)

// Handler handles HTTP requests for locations
type Handler struct{}

// NewHandler creates a new location handler
func NewHandler() *Handler {
	return &Handler{}
}

type locationResponse struct {
	Key  Key    `json:"key"`
	Name string `json:"name"`
}

// List returns all known locations in the requested language
func (h *Handler) List(c *gin.Context) {
	lang := i18n.ParseOrDefault(c.Query("lang"))

	keys := All()
	out := make([]locationResponse, len(keys))
	for i, k := range keys {
		out[i] = locationResponse{Key: k, Name: k.Name(lang)}
	}
	common.SuccessResponse(c, out)
}

// RegisterRoutes wires the location endpoints onto a router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/locations", h.List)
}
