package service

import (
	"context"
	"errors"
	"time"

	"learning-service/internal/models"
	"learning-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SessionService manages coaching sessions and the peer assessments the
// analytics aggregator reads.
type SessionService struct {
	Repo  *repository.SessionRepository
	Users *repository.UserRepository
}

func NewSessionService(repo *repository.SessionRepository, users *repository.UserRepository) *SessionService {
	return &SessionService{Repo: repo, Users: users}
}

type SessionPage struct {
	Sessions   []models.CoachingSession `json:"sessions"`
	Pagination Pagination               `json:"pagination"`
}

type Pagination struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

func (s *SessionService) ListSessions(ctx context.Context, coachID, status string, page, limit int64) (*SessionPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	sessions, total, err := s.Repo.Find(ctx, coachID, status, page, limit)
	if err != nil {
		return nil, err
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return &SessionPage{
		Sessions: sessions,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

func (s *SessionService) GetSession(ctx context.Context, id string) (*models.CoachingSession, error) {
	session, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSessionNotFound
	}
	return session, err
}

func (s *SessionService) CreateSession(ctx context.Context, session *models.CoachingSession) error {
	if session.Status == "" {
		session.Status = models.SessionScheduled
	}
	if session.Assessments == nil {
		session.Assessments = []models.Assessment{}
	}
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now
	return s.Repo.Create(ctx, session)
}

func (s *SessionService) UpdateSession(ctx context.Context, id string, update bson.M) (*models.CoachingSession, error) {
	update["updatedAt"] = time.Now().UTC()
	if err := s.Repo.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return s.GetSession(ctx, id)
}

func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func validAssessmentScore(v int) bool {
	return v >= 0 && v <= 10
}

// AddAssessment appends a peer rating to a session after range-checking the
// four sub-scores.
func (s *SessionService) AddAssessment(ctx context.Context, sessionID string, a models.Assessment) (*models.CoachingSession, error) {
	if !validAssessmentScore(a.Leadership) || !validAssessmentScore(a.Communication) ||
		!validAssessmentScore(a.Adaptability) || !validAssessmentScore(a.EmotionalInt) {
		return nil, ErrInvalidAssessment
	}
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	if err := s.Repo.PushAssessment(ctx, sessionID, a); err != nil {
		return nil, err
	}
	return s.GetSession(ctx, sessionID)
}

// CompleteSession marks a session completed and credits each attendee's
// completed-session counter.
func (s *SessionService) CompleteSession(ctx context.Context, sessionID string) (*models.CoachingSession, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.SessionCompleted {
		return session, nil
	}
	if err := s.Repo.Update(ctx, sessionID, bson.M{
		"status":    models.SessionCompleted,
		"updatedAt": time.Now().UTC(),
	}); err != nil {
		return nil, err
	}
	if err := s.Users.IncrementSessionsCompleted(ctx, session.Attendees); err != nil {
		return nil, err
	}
	return s.GetSession(ctx, sessionID)
}

func (s *SessionService) StatsOverview(ctx context.Context) (*repository.Overview, error) {
	return s.Repo.StatsOverview(ctx)
}
