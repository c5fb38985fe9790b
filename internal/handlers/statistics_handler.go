package handlers

import (
	"context"
	"net/http"

	"learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	Service *service.StatisticsService
}

func NewStatisticsHandler(s *service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{Service: s}
}

// GetUserStatistics returns the caller's learning time, completion rate,
// weekly energy label and 7-day chart.
func (h *StatisticsHandler) GetUserStatistics(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	stats, err := h.Service.ComputeUserStatistics(context.Background(), userID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetTeamStatistics lists per-member stats for manager-level callers.
func (h *StatisticsHandler) GetTeamStatistics(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	stats, err := h.Service.TeamStatistics(context.Background(), userID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
