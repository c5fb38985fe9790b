package repository

import (
	"context"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByRoles lists users holding any of the given roles, excluding one id
// (typically the caller).
func (r *UserRepository) FindByRoles(ctx context.Context, roles []string, excludeID string) ([]models.User, error) {
	filter := bson.M{"role": bson.M{"$in": roles}}
	if objID, err := primitive.ObjectIDFromHex(excludeID); err == nil {
		filter["_id"] = bson.M{"$ne": objID}
	}
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var users []models.User
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// SaveCoursesProgress writes back the whole embedded ledger. Concurrent
// writers race with last-write-wins semantics, which is accepted for
// per-user progress.
func (r *UserRepository) SaveCoursesProgress(ctx context.Context, id string, entries []models.CourseProgress) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"coursesProgress": entries}})
	return err
}

// IncrementSessionsCompleted bumps the completed-session counter for each
// attendee of a session that just completed.
func (r *UserRepository) IncrementSessionsCompleted(ctx context.Context, ids []string) error {
	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objIDs = append(objIDs, objID)
	}
	if len(objIDs) == 0 {
		return nil
	}
	_, err := r.Col.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": objIDs}},
		bson.M{"$inc": bson.M{"stats.sessionsCompleted": 1}},
	)
	return err
}
