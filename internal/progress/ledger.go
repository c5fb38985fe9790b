package progress

import (
	"math"
	"time"

	"learning-service/internal/models"
)

// Percentage derives the completion percentage of a ledger entry against the
// live lesson set. Completed ids that no longer exist in the catalog are
// ignored in the count but stay in the entry. A course with no lessons is
// vacuously complete.
func Percentage(completedLessonIDs, lessonIDs []string) int {
	if len(lessonIDs) == 0 {
		return 100
	}
	live := make(map[string]bool, len(lessonIDs))
	for _, id := range lessonIDs {
		live[id] = true
	}
	counted := make(map[string]bool, len(completedLessonIDs))
	count := 0
	for _, id := range completedLessonIDs {
		if live[id] && !counted[id] {
			counted[id] = true
			count++
		}
	}
	return int(math.Round(float64(count) / float64(len(lessonIDs)) * 100))
}

// NewEntry returns a zeroed ledger entry for a course the user has just
// touched for the first time.
func NewEntry(courseID string, now time.Time) models.CourseProgress {
	return models.CourseProgress{
		CourseID:           courseID,
		CompletedLessonIDs: []string{},
		Progress:           0,
		Score:              0,
		LastAccess:         now,
	}
}

// GetOrCreate returns the user's ledger entry for courseID, appending a
// zeroed one when none exists yet. It never duplicates an entry for the
// same course.
func GetOrCreate(user *models.User, courseID string, now time.Time) *models.CourseProgress {
	if entry := user.ProgressFor(courseID); entry != nil {
		return entry
	}
	user.CoursesProgress = append(user.CoursesProgress, NewEntry(courseID, now))
	return &user.CoursesProgress[len(user.CoursesProgress)-1]
}

// SetLessonCompleted records or clears a lesson completion, then recomputes
// the percentage against the course's live lesson set and bumps lastAccess.
// Clearing a lesson that was never recorded leaves the set unchanged.
func SetLessonCompleted(entry *models.CourseProgress, course *models.Course, lessonID string, completed bool, now time.Time) {
	if completed {
		if !entry.HasLesson(lessonID) {
			entry.CompletedLessonIDs = append(entry.CompletedLessonIDs, lessonID)
		}
	} else {
		kept := entry.CompletedLessonIDs[:0]
		for _, id := range entry.CompletedLessonIDs {
			if id != lessonID {
				kept = append(kept, id)
			}
		}
		entry.CompletedLessonIDs = kept
	}
	entry.Progress = Percentage(entry.CompletedLessonIDs, course.LessonIDs())
	entry.LastAccess = now
}

// ToggleLesson flips the completion state of a lesson and reports the new
// state. Two calls in a row restore the original entry.
func ToggleLesson(entry *models.CourseProgress, course *models.Course, lessonID string, now time.Time) bool {
	completed := !entry.HasLesson(lessonID)
	SetLessonCompleted(entry, course, lessonID, completed, now)
	return completed
}
