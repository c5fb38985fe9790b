package analytics

import (
	"fmt"
	"math"
	"time"

	"learning-service/internal/models"
)

var dayNames = [...]string{"Dim", "Lun", "Mar", "Mer", "Jeu", "Ven", "Sam"}

// DayName returns the French short label for a date ("Lun", "Mar", ...).
func DayName(t time.Time) string {
	return dayNames[int(t.UTC().Weekday())]
}

// StartOfDay truncates a time to UTC midnight. All day bucketing in this
// package, including mood-log matching, uses UTC days.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// dayActivity accumulates one day's session-derived signals for a user.
type dayActivity struct {
	sessionCount int
	energySum    float64
	focusSum     float64
	assessments  int
}

// summarizeSessions buckets completed sessions by UTC start day and averages
// the assessments targeting the user. Energy pairs leadership with
// adaptability, focus pairs communication with emotional intelligence, each
// averaged to a 0-10 value then scaled by 10.
func summarizeSessions(userID string, sessions []models.CoachingSession) map[time.Time]*dayActivity {
	days := make(map[time.Time]*dayActivity)
	for _, s := range sessions {
		if s.Status != models.SessionCompleted {
			continue
		}
		day := StartOfDay(s.StartTime)
		act := days[day]
		if act == nil {
			act = &dayActivity{}
			days[day] = act
		}
		act.sessionCount++
		for _, a := range s.AssessmentsFor(userID) {
			act.energySum += float64(a.Leadership+a.Adaptability) / 2 * 10
			act.focusSum += float64(a.Communication+a.EmotionalInt) / 2 * 10
			act.assessments++
		}
	}
	return days
}

// moodSignal is the primary energy source: the user's own daily mood check.
type moodSignal struct {
	moods map[time.Time]int
}

func newMoodSignal(logs []models.EnergyLog) moodSignal {
	moods := make(map[time.Time]int, len(logs))
	for _, l := range logs {
		moods[StartOfDay(l.Date)] = l.Mood
	}
	return moodSignal{moods: moods}
}

func (s moodSignal) Energy(day time.Time) (int, bool) {
	mood, ok := s.moods[day]
	if !ok {
		return 0, false
	}
	return clamp(mood * MoodEnergyStep), true
}

// assessmentSignal is the fallback energy source, derived from peer
// assessments in that day's sessions. Present only on days with at least
// one assessment targeting the user.
type assessmentSignal struct {
	days map[time.Time]*dayActivity
}

func (s assessmentSignal) Energy(day time.Time) (int, bool) {
	act := s.days[day]
	if act == nil || act.assessments == 0 {
		return 0, false
	}
	return clamp(int(math.Round(act.energySum / float64(act.assessments)))), true
}

// BuildDailyStats fuses mood logs and session assessments into the trailing
// seven-day chart, today included. Per day, energy comes from the first
// signal that is present: mood check first, session assessments second,
// zero otherwise. Focus has no mood analogue; it is assessment-derived, or
// falls back to the session-count heuristic.
func BuildDailyStats(userID string, sessions []models.CoachingSession, logs []models.EnergyLog, now time.Time) []DailyStat {
	activity := summarizeSessions(userID, sessions)
	signals := []energySignal{
		newMoodSignal(logs),
		assessmentSignal{days: activity},
	}

	today := StartOfDay(now)
	stats := make([]DailyStat, 0, ChartDays)
	for i := 0; i < ChartDays; i++ {
		day := today.AddDate(0, 0, i-(ChartDays-1))

		energy := 0
		for _, sig := range signals {
			if v, ok := sig.Energy(day); ok {
				energy = v
				break
			}
		}

		focus := 0
		if act := activity[day]; act != nil {
			if act.assessments > 0 {
				focus = int(math.Round(act.focusSum / float64(act.assessments)))
			} else {
				focus = act.sessionCount * FocusPerSession
			}
		}

		stats = append(stats, DailyStat{
			Name:   DayName(day),
			Energy: clamp(energy),
			Focus:  clamp(focus),
			Date:   day,
		})
	}
	return stats
}

// EnergyLabel maps the average of the non-zero daily energies to the weekly
// summary label. Zero days mean missing data, so they are excluded from the
// average rather than dragging it down.
func EnergyLabel(stats []DailyStat) string {
	sum, n := 0, 0
	for _, d := range stats {
		if d.Energy > 0 {
			sum += d.Energy
			n++
		}
	}
	if n == 0 {
		return EnergyLow
	}
	avg := float64(sum) / float64(n)
	switch {
	case avg >= 75:
		return EnergyHigh
	case avg >= 40:
		return EnergyMedium
	default:
		return EnergyLow
	}
}

// FormatMinutes renders a minute total as "3h 25m".
func FormatMinutes(total int) string {
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// TotalLearningMinutes sums completed-session minutes with the fixed
// per-lesson credit across every ledger entry.
func TotalLearningMinutes(sessions []models.CoachingSession, entries []models.CourseProgress) int {
	total := 0
	for _, s := range sessions {
		if s.Status == models.SessionCompleted {
			total += s.Duration
		}
	}
	for _, cp := range entries {
		total += len(cp.CompletedLessonIDs) * MinutesPerLesson
	}
	return total
}

// CompletionRate is the mean completion percentage across the user's ledger
// entries, zero when the user has none.
func CompletionRate(entries []models.CourseProgress) int {
	if len(entries) == 0 {
		return 0
	}
	total := 0
	for _, cp := range entries {
		total += cp.Progress
	}
	return int(math.Round(float64(total) / float64(len(entries))))
}

// Compute assembles the full statistics view for one user from already
// fetched store snapshots. It holds no state and caches nothing.
func Compute(userID string, entries []models.CourseProgress, sessions []models.CoachingSession, logs []models.EnergyLog, now time.Time) *UserStatistics {
	chart := BuildDailyStats(userID, sessions, logs, now)
	return &UserStatistics{
		LearningTime:   FormatMinutes(TotalLearningMinutes(sessions, entries)),
		CompletionRate: fmt.Sprintf("%d%%", CompletionRate(entries)),
		EnergyLevel:    EnergyLabel(chart),
		ChartData:      chart,
	}
}
