package progress

import (
	"fmt"
	"time"

	"learning-service/internal/models"
)

// IsEligible reports whether the entry covers every lesson of the course.
// A nil entry (course never started) is never eligible.
func IsEligible(entry *models.CourseProgress, course *models.Course) bool {
	if entry == nil {
		return false
	}
	return len(entry.CompletedLessonIDs) >= len(course.LessonIDs())
}

// NewCertificate builds the descriptor handed to the document renderer.
func NewCertificate(user *models.User, course *models.Course, now time.Time) models.Certificate {
	return models.Certificate{
		ID:             fmt.Sprintf("cert-%s-%s", user.ID, course.CourseID),
		StudentName:    user.Name,
		CourseTitle:    course.Title,
		CompletionDate: now,
		Organization:   models.CertificateOrganization,
	}
}
