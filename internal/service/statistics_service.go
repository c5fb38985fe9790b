package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"learning-service/internal/analytics"
	"learning-service/internal/models"
	"learning-service/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// StatisticsService computes the derived analytics views. Each call fetches
// fresh snapshots from the stores and recomputes; nothing is cached.
type StatisticsService struct {
	Users      *repository.UserRepository
	Sessions   *repository.SessionRepository
	EnergyLogs *repository.EnergyLogRepository
}

func NewStatisticsService(users *repository.UserRepository, sessions *repository.SessionRepository, logs *repository.EnergyLogRepository) *StatisticsService {
	return &StatisticsService{Users: users, Sessions: sessions, EnergyLogs: logs}
}

// ComputeUserStatistics builds learning time, completion rate, the weekly
// energy label and the trailing 7-day chart for one user.
func (s *StatisticsService) ComputeUserStatistics(ctx context.Context, userID string) (*analytics.UserStatistics, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	sessions, err := s.Sessions.FindCompletedForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	since := analytics.StartOfDay(now).AddDate(0, 0, -(analytics.ChartDays - 1))
	logs, err := s.EnergyLogs.FindForUserSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	return analytics.Compute(userID, user.CoursesProgress, sessions, logs, now), nil
}

// TeamMemberStats is one row of the manager's team view.
type TeamMemberStats struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	LearningTime   string    `json:"learningTime"`
	CompletionRate string    `json:"completionRate"`
	LastActive     time.Time `json:"lastActive"`
}

// TeamStatistics lists learning time and completion rate for every student
// and coach visible to a manager-level caller.
func (s *StatisticsService) TeamStatistics(ctx context.Context, managerID string) ([]TeamMemberStats, error) {
	manager, err := s.Users.FindByID(ctx, managerID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	switch manager.Role {
	case models.RoleManager, models.RoleAdmin, models.RoleCoach:
	default:
		return nil, ErrForbidden
	}

	members, err := s.Users.FindByRoles(ctx, []string{models.RoleUser, models.RoleCoach}, managerID)
	if err != nil {
		return nil, err
	}

	stats := make([]TeamMemberStats, 0, len(members))
	for _, m := range members {
		sessions, err := s.Sessions.FindCompletedForUser(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		stats = append(stats, TeamMemberStats{
			ID:             m.ID,
			Name:           m.Name,
			Email:          m.Email,
			Role:           m.Role,
			LearningTime:   analytics.FormatMinutes(analytics.TotalLearningMinutes(sessions, m.CoursesProgress)),
			CompletionRate: fmt.Sprintf("%d%%", analytics.CompletionRate(m.CoursesProgress)),
			LastActive:     m.LastActive,
		})
	}
	return stats, nil
}
