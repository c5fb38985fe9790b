package service

import "errors"

// Sentinel errors handlers translate to HTTP status codes. Lookups fail
// fast rather than synthesizing entities; the one sanctioned exception is
// the ledger's get-or-create path.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrModuleNotFound     = errors.New("module not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrNotQuiz            = errors.New("lesson is not a quiz")
	ErrCourseNotStarted   = errors.New("course not started")
	ErrCourseNotCompleted = errors.New("course not completed")
	ErrInvalidMood        = errors.New("mood must be 1, 2, or 3")
	ErrInvalidAssessment  = errors.New("assessment scores must be between 0 and 10")
	ErrForbidden          = errors.New("insufficient role")
)
