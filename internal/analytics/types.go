package analytics

import "time"

const (
	// ChartDays is the length of the trailing daily series, today included.
	ChartDays = 7

	// MinutesPerLesson is the fixed learning-time credit per completed
	// lesson. It is a heuristic, not derived from lesson metadata.
	MinutesPerLesson = 15

	// FocusPerSession is the activity-heuristic focus credit per session
	// on days without any assessment.
	FocusPerSession = 25

	// MoodEnergyStep converts a 1-3 mood into the 0-100 energy scale.
	MoodEnergyStep = 33
)

// Weekly energy summary labels.
const (
	EnergyHigh   = "Haute"
	EnergyMedium = "Moyenne"
	EnergyLow    = "Basse"
)

// DailyStat is one point of the trailing 7-day chart. It is recomputed on
// every read and never persisted.
type DailyStat struct {
	Name   string    `json:"name"`
	Energy int       `json:"energy"`
	Focus  int       `json:"focus"`
	Date   time.Time `json:"date"`
}

// UserStatistics is the aggregate view returned to callers.
type UserStatistics struct {
	LearningTime   string      `json:"learningTime"`
	CompletionRate string      `json:"completionRate"`
	EnergyLevel    string      `json:"energyLevel"`
	ChartData      []DailyStat `json:"chartData"`
}

// energySignal produces an energy value for a calendar day, reporting
// absence so lower-priority signals get a chance. Signals are evaluated in
// slice order; the first present value wins. Adding a new source means
// appending a provider, not threading another conditional.
type energySignal interface {
	Energy(day time.Time) (int, bool)
}
