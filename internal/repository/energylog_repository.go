package repository

import (
	"context"
	"time"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnergyLogRepository stores one mood check per user per UTC day. The
// collection carries a unique index on (userId, date); UpsertForDay relies
// on it to overwrite same-day resubmissions instead of appending.
type EnergyLogRepository struct {
	Col *mongo.Collection
}

func NewEnergyLogRepository(db *mongo.Database) *EnergyLogRepository {
	return &EnergyLogRepository{Col: db.Collection("energy_logs")}
}

// UpsertForDay records the mood for the given day, replacing any earlier
// submission that day, and returns the stored log.
func (r *EnergyLogRepository) UpsertForDay(ctx context.Context, userID string, day time.Time, mood int) (*models.EnergyLog, error) {
	now := time.Now().UTC()
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	var log models.EnergyLog
	err := r.Col.FindOneAndUpdate(ctx,
		bson.M{"userId": userID, "date": day},
		bson.M{
			"$set":         bson.M{"mood": mood, "updatedAt": now},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		opts,
	).Decode(&log)
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// FindForUserSince returns the user's logs from the given day forward,
// newest first.
func (r *EnergyLogRepository) FindForUserSince(ctx context.Context, userID string, since time.Time) ([]models.EnergyLog, error) {
	opts := options.Find().SetSort(bson.M{"date": -1})
	cur, err := r.Col.Find(ctx, bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": since},
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var logs []models.EnergyLog
	for cur.Next(ctx) {
		var l models.EnergyLog
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, nil
}

func (r *EnergyLogRepository) FindForDay(ctx context.Context, userID string, day time.Time) (*models.EnergyLog, error) {
	var log models.EnergyLog
	if err := r.Col.FindOne(ctx, bson.M{"userId": userID, "date": day}).Decode(&log); err != nil {
		return nil, err
	}
	return &log, nil
}
