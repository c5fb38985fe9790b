package repository

import (
	"context"
	"time"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SessionRepository struct {
	Col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{Col: db.Collection("sessions")}
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.CoachingSession, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var session models.CoachingSession
	if err := r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Find lists sessions newest first with optional coach/status filters.
func (r *SessionRepository) Find(ctx context.Context, coachID, status string, page, limit int64) ([]models.CoachingSession, int64, error) {
	filter := bson.M{}
	if coachID != "" {
		filter["coachId"] = coachID
	}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().
		SetSort(bson.M{"startTime": -1}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)
	var sessions []models.CoachingSession
	for cur.Next(ctx) {
		var s models.CoachingSession
		if err := cur.Decode(&s); err != nil {
			return nil, 0, err
		}
		sessions = append(sessions, s)
	}

	total, err := r.Col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

// FindCompletedForUser returns every completed session the user attended.
func (r *SessionRepository) FindCompletedForUser(ctx context.Context, userID string) ([]models.CoachingSession, error) {
	return r.findCompleted(ctx, bson.M{
		"attendees": userID,
		"status":    models.SessionCompleted,
	})
}

// FindCompletedForUserInRange narrows to sessions starting in [from, to).
func (r *SessionRepository) FindCompletedForUserInRange(ctx context.Context, userID string, from, to time.Time) ([]models.CoachingSession, error) {
	return r.findCompleted(ctx, bson.M{
		"attendees": userID,
		"status":    models.SessionCompleted,
		"startTime": bson.M{"$gte": from, "$lt": to},
	})
}

func (r *SessionRepository) findCompleted(ctx context.Context, filter bson.M) ([]models.CoachingSession, error) {
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var sessions []models.CoachingSession
	for cur.Next(ctx) {
		var s models.CoachingSession
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func (r *SessionRepository) Create(ctx context.Context, session *models.CoachingSession) error {
	res, err := r.Col.InsertOne(ctx, session)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		session.ID = oid.Hex()
	}
	return nil
}

func (r *SessionRepository) Update(ctx context.Context, id string, update bson.M) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	return err
}

func (r *SessionRepository) Delete(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// PushAssessment appends a peer assessment to the session document.
func (r *SessionRepository) PushAssessment(ctx context.Context, id string, a models.Assessment) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$push": bson.M{"assessments": a}})
	return err
}

// Overview aggregates catalog-wide session counters.
type Overview struct {
	TotalSessions          int64 `json:"totalSessions"`
	CompletedSessions      int64 `json:"completedSessions"`
	ScheduledSessions      int64 `json:"scheduledSessions"`
	TotalCompletedDuration int64 `json:"totalCompletedDuration"`
}

func (r *SessionRepository) StatsOverview(ctx context.Context) (*Overview, error) {
	total, err := r.Col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	completed, err := r.Col.CountDocuments(ctx, bson.M{"status": models.SessionCompleted})
	if err != nil {
		return nil, err
	}
	scheduled, err := r.Col.CountDocuments(ctx, bson.M{"status": models.SessionScheduled})
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.SessionCompleted}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$duration"}}}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var totalDuration int64
	if cur.Next(ctx) {
		var row struct {
			Total int64 `bson:"total"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		totalDuration = row.Total
	}

	return &Overview{
		TotalSessions:          total,
		CompletedSessions:      completed,
		ScheduledSessions:      scheduled,
		TotalCompletedDuration: totalDuration,
	}, nil
}
