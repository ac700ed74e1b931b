package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase/dashboard"
)

type DashboardHandler struct {
	stats *dashboard.GetStats
}

func NewDashboardHandler(stats *dashboard.GetStats) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// Stats returns the shop counters. An unknown shop yields all zeros
// rather than 404; the counters are aggregates, not an entity lookup.
func (h *DashboardHandler) Stats(c *gin.Context) {
	shopID := c.Query("shop_id")
	if shopID == "" {
		httperr.BadRequest(c, "missing_shop_id", "Query parameter shop_id is required.")
		return
	}

	stats, err := h.stats.Execute(c.Request.Context(), shopID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, stats)
}
