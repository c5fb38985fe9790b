package models

import "time"

const (
	SessionScheduled = "SCHEDULED"
	SessionCompleted = "COMPLETED"
)

// Assessment is a peer rating embedded in a coaching session. Each sub-score
// is on a 0-10 scale.
type Assessment struct {
	RaterID       string `bson:"raterId" json:"raterId"`
	TargetID      string `bson:"targetId" json:"targetId"`
	Leadership    int    `bson:"leadership" json:"leadership"`
	Communication int    `bson:"communication" json:"communication"`
	Adaptability  int    `bson:"adaptability" json:"adaptability"`
	EmotionalInt  int    `bson:"emotionalInt" json:"emotionalInt"`
	Comment       string `bson:"comment" json:"comment"`
}

type CoachingSession struct {
	ID          string       `bson:"_id,omitempty" json:"id"`
	CoachID     string       `bson:"coachId" json:"coachId"`
	Attendees   []string     `bson:"attendees" json:"attendees"`
	StartTime   time.Time    `bson:"startTime" json:"startTime"`
	EndTime     time.Time    `bson:"endTime" json:"endTime"`
	Duration    int          `bson:"duration" json:"duration"` // minutes
	Status      string       `bson:"status" json:"status"`
	VideoURL    string       `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Assessments []Assessment `bson:"assessments" json:"assessments"`
	CreatedAt   time.Time    `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time    `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// AssessmentsFor returns the assessments rating the given attendee.
func (s *CoachingSession) AssessmentsFor(targetID string) []Assessment {
	var out []Assessment
	for _, a := range s.Assessments {
		if a.TargetID == targetID {
			out = append(out, a)
		}
	}
	return out
}
