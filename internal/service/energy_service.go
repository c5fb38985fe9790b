package service

import (
	"context"
	"errors"
	"time"

	"learning-service/internal/analytics"
	"learning-service/internal/models"
	"learning-service/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnergyService manages the daily mood checks feeding the analytics chart.
type EnergyService struct {
	Logs *repository.EnergyLogRepository
}

func NewEnergyService(logs *repository.EnergyLogRepository) *EnergyService {
	return &EnergyService{Logs: logs}
}

// RecordMood saves today's mood check, overwriting an earlier one the same
// UTC day.
func (s *EnergyService) RecordMood(ctx context.Context, userID string, mood int) (*models.EnergyLog, error) {
	if mood < models.MoodLow || mood > models.MoodHigh {
		return nil, ErrInvalidMood
	}
	today := analytics.StartOfDay(time.Now())
	return s.Logs.UpsertForDay(ctx, userID, today, mood)
}

// History returns the user's mood checks over the trailing n days, newest
// first.
func (s *EnergyService) History(ctx context.Context, userID string, days int) ([]models.EnergyLog, error) {
	if days <= 0 {
		days = analytics.ChartDays
	}
	since := analytics.StartOfDay(time.Now()).AddDate(0, 0, -days)
	return s.Logs.FindForUserSince(ctx, userID, since)
}

// TodayStatus reports whether the user already checked in today.
type TodayStatus struct {
	HasSubmitted bool `json:"hasSubmitted"`
	Mood         *int `json:"mood"`
}

func (s *EnergyService) Today(ctx context.Context, userID string) (*TodayStatus, error) {
	log, err := s.Logs.FindForDay(ctx, userID, analytics.StartOfDay(time.Now()))
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &TodayStatus{HasSubmitted: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return &TodayStatus{HasSubmitted: true, Mood: &log.Mood}, nil
}
