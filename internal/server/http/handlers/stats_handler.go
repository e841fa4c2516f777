package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves program statistics.
type StatsHandler struct {
	facade StatsFacade
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(facade StatsFacade) *StatsHandler {
	return &StatsHandler{facade: facade}
}

// Get handles GET /api/loyalty/stats.
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.facade.Stats(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, stats)
}
