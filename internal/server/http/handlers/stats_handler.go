package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storeratings/internal/server/http/dto"
)

// StatsHandler serves the dashboards.
type StatsHandler struct {
	facade StatsFacade
}

// NewStatsHandler creates StatsHandler instance.
func NewStatsHandler(facade StatsFacade) *StatsHandler {
	return &StatsHandler{facade: facade}
}

// Platform handles GET /api/stats/admin.
func (h *StatsHandler) Platform(c *gin.Context) {
	stats, err := h.facade.PlatformStats(c.Request.Context(), CurrentPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPlatformStatsResponse(stats))
}

// Owner handles GET /api/stats/store.
func (h *StatsHandler) Owner(c *gin.Context) {
	stats, err := h.facade.OwnerStats(c.Request.Context(), CurrentPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOwnerStatsResponse(stats))
}
