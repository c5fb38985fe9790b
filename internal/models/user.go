package models

import "time"

const (
	RoleUser    = "USER"
	RoleManager = "MANAGER"
	RoleCoach   = "COACH"
	RoleAdmin   = "ADMIN"
)

// CourseProgress is the per-course ledger entry embedded in a user document.
// Progress is always derived from the live lesson set, never trusted from
// storage. Stale lesson ids referencing deleted lessons are tolerated.
type CourseProgress struct {
	CourseID           string    `bson:"courseId" json:"courseId"`
	CompletedLessonIDs []string  `bson:"completedLessonIds" json:"completedLessonIds"`
	Progress           int       `bson:"progress" json:"progress"`
	Score              int       `bson:"score" json:"score"`
	LastAccess         time.Time `bson:"lastAccess" json:"lastAccess"`
}

// HasLesson reports whether lessonID is recorded as completed.
func (cp *CourseProgress) HasLesson(lessonID string) bool {
	for _, id := range cp.CompletedLessonIDs {
		if id == lessonID {
			return true
		}
	}
	return false
}

type UserStats struct {
	SessionsCompleted  int        `bson:"sessionsCompleted" json:"sessionsCompleted"`
	LastAssessmentDate *time.Time `bson:"lastAssessmentDate,omitempty" json:"lastAssessmentDate,omitempty"`
}

type User struct {
	ID              string           `bson:"_id,omitempty" json:"id"`
	Email           string           `bson:"email" json:"email"`
	Name            string           `bson:"name" json:"name"`
	Role            string           `bson:"role" json:"role"`
	AvatarURL       string           `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Stats           UserStats        `bson:"stats" json:"stats"`
	CoursesProgress []CourseProgress `bson:"coursesProgress" json:"coursesProgress"`
	LastActive      time.Time        `bson:"lastActive,omitempty" json:"lastActive,omitempty"`
	CreatedAt       time.Time        `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       time.Time        `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ProgressFor returns the ledger entry for courseID, or nil if the user has
// never touched the course.
func (u *User) ProgressFor(courseID string) *CourseProgress {
	for i := range u.CoursesProgress {
		if u.CoursesProgress[i].CourseID == courseID {
			return &u.CoursesProgress[i]
		}
	}
	return nil
}
