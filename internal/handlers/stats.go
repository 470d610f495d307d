package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaard-farm/farm-api/internal/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats godoc
// @Summary Dashboard statistics
// @Description Cross-resource counts and derived sums over the current records
// @Tags stats
// @Produce json
// @Success 200 {object} services.Stats
// @Failure 500 {object} ErrorResponse
// @Router /api/stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.ComputeStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
