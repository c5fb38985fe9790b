package handlers

import (
	"errors"
	"net/http"

	"learning-service/internal/service"
)

// statusFor maps service sentinel errors to HTTP status codes; anything
// unrecognized is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, service.ErrLessonNotFound),
		errors.Is(err, service.ErrModuleNotFound),
		errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidMood),
		errors.Is(err, service.ErrNotQuiz),
		errors.Is(err, service.ErrInvalidAssessment):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrCourseNotStarted),
		errors.Is(err, service.ErrCourseNotCompleted),
		errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
