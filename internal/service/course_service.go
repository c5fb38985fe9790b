package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"learning-service/internal/models"
	"learning-service/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CourseService maintains the catalog the progress engine reads. Module and
// lesson edits load the course, mutate the tree in memory and write the
// whole tree back, mirroring the embedded-document shape.
type CourseService struct {
	Repo *repository.CourseRepository
}

func NewCourseService(repo *repository.CourseRepository) *CourseService {
	return &CourseService{Repo: repo}
}

func (s *CourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.Repo.FindAll(ctx)
}

func (s *CourseService) GetCourse(ctx context.Context, courseID string) (*models.Course, error) {
	course, err := s.Repo.FindByCourseID(ctx, courseID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCourseNotFound
	}
	return course, err
}

func (s *CourseService) CreateCourse(ctx context.Context, title, category string) (*models.Course, error) {
	now := time.Now().UTC()
	course := &models.Course{
		CourseID:  fmt.Sprintf("c-%s", uuid.NewString()),
		Title:     title,
		Category:  category,
		Modules:   []models.CourseModule{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, courseID, title, category string) (*models.Course, error) {
	course, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	update := bson.M{"updatedAt": time.Now().UTC()}
	if title != "" {
		course.Title = title
		update["title"] = title
	}
	if category != "" {
		course.Category = category
		update["category"] = category
	}
	if err := s.Repo.Update(ctx, courseID, update); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) DeleteCourse(ctx context.Context, courseID string) error {
	deleted, err := s.Repo.Delete(ctx, courseID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrCourseNotFound
	}
	return nil
}

func (s *CourseService) AddModule(ctx context.Context, courseID, title string) (*models.CourseModule, error) {
	course, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	module := models.CourseModule{
		ID:      fmt.Sprintf("m-%s", uuid.NewString()),
		Title:   title,
		Lessons: []models.Lesson{},
	}
	course.Modules = append(course.Modules, module)
	if err := s.Repo.SaveModules(ctx, courseID, course.Modules); err != nil {
		return nil, err
	}
	return &module, nil
}

func (s *CourseService) UpdateModule(ctx context.Context, courseID, moduleID, title string) (*models.CourseModule, error) {
	course, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	module := course.FindModule(moduleID)
	if module == nil {
		return nil, ErrModuleNotFound
	}
	if title != "" {
		module.Title = title
	}
	if err := s.Repo.SaveModules(ctx, courseID, course.Modules); err != nil {
		return nil, err
	}
	return module, nil
}

func (s *CourseService) DeleteModule(ctx context.Context, courseID, moduleID string) error {
	course, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return err
	}
	kept := course.Modules[:0]
	for _, m := range course.Modules {
		if m.ID != moduleID {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(course.Modules) {
		return ErrModuleNotFound
	}
	course.Modules = kept
	return s.Repo.SaveModules(ctx, courseID, course.Modules)
}

// LessonInput carries the writable lesson fields from the API.
type LessonInput struct {
	Title     string                `json:"title"`
	Type      string                `json:"type"`
	Duration  string                `json:"duration"`
	Content   string                `json:"content"`
	Questions []models.QuizQuestion `json:"questions"`
}

func (s *CourseService) AddLesson(ctx context.Context, courseID, moduleID string, in LessonInput) (*models.Lesson, error) {
	course, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	module := course.FindModule(moduleID)
	if module == nil {
		return nil, ErrModuleNotFound
	}

	lesson := models.Lesson{
		ID:        fmt.Sprintf("l-%s", uuid.NewString()),
		Title:     in.Title,
		Type:      in.Type,
		Duration:  in.Duration,
		Content:   in.Content,
		Steps:     []models.LessonStep{},
		Questions: in.Questions,
	}
	if lesson.Duration == "" {
		lesson.Duration = "5 min"
	}
	if lesson.Questions == nil {
		lesson.Questions = []models.QuizQuestion{}
	}
	module.Lessons = append(module.Lessons, lesson)
	if err := s.Repo.SaveModules(ctx, courseID, course.Modules); err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (s *CourseService) UpdateLesson(ctx context.Context, courseID, moduleID, lessonID string, in LessonInput) (*models.Lesson, error) {
	course, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	module := course.FindModule(moduleID)
	if module == nil {
		return nil, ErrModuleNotFound
	}
	var lesson *models.Lesson
	for i := range module.Lessons {
		if module.Lessons[i].ID == lessonID {
			lesson = &module.Lessons[i]
			break
		}
	}
	if lesson == nil {
		return nil, ErrLessonNotFound
	}

	if in.Title != "" {
		lesson.Title = in.Title
	}
	if in.Type != "" {
		lesson.Type = in.Type
	}
	if in.Duration != "" {
		lesson.Duration = in.Duration
	}
	if in.Content != "" {
		lesson.Content = in.Content
	}
	if in.Questions != nil {
		lesson.Questions = in.Questions
	}
	if err := s.Repo.SaveModules(ctx, courseID, course.Modules); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *CourseService) DeleteLesson(ctx context.Context, courseID, moduleID, lessonID string) error {
	course, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return err
	}
	module := course.FindModule(moduleID)
	if module == nil {
		return ErrModuleNotFound
	}
	kept := module.Lessons[:0]
	for _, l := range module.Lessons {
		if l.ID != lessonID {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(module.Lessons) {
		return ErrLessonNotFound
	}
	module.Lessons = kept
	return s.Repo.SaveModules(ctx, courseID, course.Modules)
}
