package preferences

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/visitgeorgia/transfers/pkg/common"
	"github.com/visitgeorgia/transfers/pkg/logger"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Get handles GET /preferences/:client
func (h *Handler) Get(c *gin.Context) {
	clientID := c.Param("client")

	p, err := h.store.Load(c.Request.Context(), clientID)
	if err != nil {
		logger.Error("failed to load preferences", zap.Error(err), zap.String("client", clientID))
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load preferences")
		return
	}

	common.SuccessResponse(c, p)
}

// Put handles PUT /preferences/:client
func (h *Handler) Put(c *gin.Context) {
	clientID := c.Param("client")

	var p Preferences
	if err := c.ShouldBindJSON(&p); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Unknown values fall back to defaults rather than erroring, so a
	// stale client can never lock itself out of its settings.
	p = p.Normalize()

	if err := h.store.Save(c.Request.Context(), clientID, p); err != nil {
		logger.Error("failed to save preferences", zap.Error(err), zap.String("client", clientID))
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to save preferences")
		return
	}

	common.SuccessResponse(c, p)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/preferences/:client", h.Get)
	r.PUT("/preferences/:client", h.Put)
}
