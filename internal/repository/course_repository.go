package repository

import (
	"context"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CourseRepository reads and writes the catalog. Courses are addressed by
// their stable external "id" field, not the Mongo _id.
type CourseRepository struct {
	Col *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{Col: db.Collection("courses")}
}

func (r *CourseRepository) FindAll(ctx context.Context) ([]models.Course, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var courses []models.Course
	for cur.Next(ctx) {
		var c models.Course
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, nil
}

func (r *CourseRepository) FindByCourseID(ctx context.Context, courseID string) (*models.Course, error) {
	var course models.Course
	if err := r.Col.FindOne(ctx, bson.M{"id": courseID}).Decode(&course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	_, err := r.Col.InsertOne(ctx, course)
	return err
}

func (r *CourseRepository) Update(ctx context.Context, courseID string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"id": courseID}, bson.M{"$set": update})
	return err
}

// SaveModules replaces the whole module tree after an in-memory mutation.
func (r *CourseRepository) SaveModules(ctx context.Context, courseID string, modules []models.CourseModule) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"id": courseID}, bson.M{"$set": bson.M{"modules": modules}})
	return err
}

func (r *CourseRepository) Delete(ctx context.Context, courseID string) (int64, error) {
	res, err := r.Col.DeleteOne(ctx, bson.M{"id": courseID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
