package service

import (
	"context"
	"errors"
	"time"

	"learning-service/internal/models"
	"learning-service/internal/progress"
	"learning-service/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProgressService owns the per-user course ledger: lesson toggles, quiz
// submissions and certificate eligibility. All percentage math lives in the
// progress package; this layer fetches snapshots and writes the ledger back
// (read-modify-write, last-write-wins).
type ProgressService struct {
	Users   *repository.UserRepository
	Courses *repository.CourseRepository
}

func NewProgressService(users *repository.UserRepository, courses *repository.CourseRepository) *ProgressService {
	return &ProgressService{Users: users, Courses: courses}
}

type ToggleLessonResult struct {
	IsCompleted        bool     `json:"isCompleted"`
	CompletedLessonIDs []string `json:"completedLessonIds"`
	Progress           int      `json:"progress"`
}

func (s *ProgressService) findCourse(ctx context.Context, courseID string) (*models.Course, error) {
	course, err := s.Courses.FindByCourseID(ctx, courseID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCourseNotFound
	}
	return course, err
}

func (s *ProgressService) findUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// ToggleLesson flips the completion state of a lesson in the user's ledger
// and recomputes the percentage against the live catalog.
func (s *ProgressService) ToggleLesson(ctx context.Context, userID, courseID, lessonID string) (*ToggleLessonResult, error) {
	course, err := s.findCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.FindLesson(lessonID) == nil {
		return nil, ErrLessonNotFound
	}
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := progress.GetOrCreate(user, courseID, now)
	completed := progress.ToggleLesson(entry, course, lessonID, now)

	if err := s.Users.SaveCoursesProgress(ctx, userID, user.CoursesProgress); err != nil {
		return nil, err
	}
	return &ToggleLessonResult{
		IsCompleted:        completed,
		CompletedLessonIDs: entry.CompletedLessonIDs,
		Progress:           entry.Progress,
	}, nil
}

// MarkLessonComplete is the explicit set variant of ToggleLesson. Clearing
// a lesson that was never recorded is a no-op on the set.
func (s *ProgressService) MarkLessonComplete(ctx context.Context, userID, courseID, lessonID string, completed bool) (*models.CourseProgress, error) {
	course, err := s.findCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.FindLesson(lessonID) == nil {
		return nil, ErrLessonNotFound
	}
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := progress.GetOrCreate(user, courseID, now)
	progress.SetLessonCompleted(entry, course, lessonID, completed, now)

	if err := s.Users.SaveCoursesProgress(ctx, userID, user.CoursesProgress); err != nil {
		return nil, err
	}
	return entry, nil
}

// SubmitQuiz grades the answers against the quiz lesson's answer key. On a
// pass it marks the quiz lesson complete and records the score, so passing
// a quiz advances the ledger exactly like completing a lesson.
func (s *ProgressService) SubmitQuiz(ctx context.Context, userID, courseID, lessonID string, answers map[string]int) (*progress.GradeResult, error) {
	course, err := s.findCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	lesson := course.FindLesson(lessonID)
	if lesson == nil {
		return nil, ErrLessonNotFound
	}
	if lesson.Type != models.ContentQuiz {
		return nil, ErrNotQuiz
	}

	result := progress.Grade(lesson.Questions, answers)
	if result.Passed {
		user, err := s.findUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		now := time.Now().UTC()
		entry := progress.GetOrCreate(user, courseID, now)
		progress.SetLessonCompleted(entry, course, lessonID, true, now)
		entry.Score = result.Score
		if err := s.Users.SaveCoursesProgress(ctx, userID, user.CoursesProgress); err != nil {
			return nil, err
		}
	}
	return &result, nil
}

// CourseCertificate checks eligibility and synthesizes the certificate
// descriptor. The actual document rendering is an external concern.
func (s *ProgressService) CourseCertificate(ctx context.Context, userID, courseID string) (*models.Certificate, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	course, err := s.findCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	entry := user.ProgressFor(courseID)
	if entry == nil {
		return nil, ErrCourseNotStarted
	}
	if !progress.IsEligible(entry, course) {
		return nil, ErrCourseNotCompleted
	}
	cert := progress.NewCertificate(user, course, time.Now().UTC())
	return &cert, nil
}
