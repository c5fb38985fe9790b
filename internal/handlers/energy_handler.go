package handlers

import (
	"context"
	"net/http"
	"strconv"

	"learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type EnergyHandler struct {
	Service *service.EnergyService
}

func NewEnergyHandler(s *service.EnergyService) *EnergyHandler {
	return &EnergyHandler{Service: s}
}

// RecordMood saves today's mood check (1=low, 2=medium, 3=high).
func (h *EnergyHandler) RecordMood(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	var req struct {
		Mood int `json:"mood"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mood value. Must be 1, 2, or 3."})
		return
	}
	log, err := h.Service.RecordMood(context.Background(), userID, req.Mood)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Mood check saved",
		"log":     gin.H{"date": log.Date, "mood": log.Mood},
	})
}

// History lists the caller's mood checks over the trailing days (7 by
// default, ?days=N to widen).
func (h *EnergyHandler) History(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	days, _ := strconv.Atoi(c.Query("days"))
	logs, err := h.Service.History(context.Background(), userID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, 0, len(logs))
	for _, l := range logs {
		out = append(out, gin.H{"date": l.Date, "mood": l.Mood})
	}
	c.JSON(http.StatusOK, out)
}

// Today reports whether the caller already submitted a mood check today.
func (h *EnergyHandler) Today(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	status, err := h.Service.Today(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}
