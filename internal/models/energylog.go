package models

import "time"

const (
	MoodLow    = 1
	MoodMedium = 2
	MoodHigh   = 3
)

// EnergyLog stores one mood check per user per UTC calendar day. Date is
// always normalized to midnight; resubmitting the same day overwrites.
type EnergyLog struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Date      time.Time `bson:"date" json:"date"`
	Mood      int       `bson:"mood" json:"mood"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
