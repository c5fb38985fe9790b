package analytics

import (
	"testing"
	"time"

	"learning-service/internal/models"
)

// Monday, so the chart runs Tue "Mar" through Mon "Lun".
var testNow = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

func completedSession(userID string, start time.Time, duration int, assessments ...models.Assessment) models.CoachingSession {
	return models.CoachingSession{
		ID:          "s-" + start.Format("20060102"),
		CoachID:     "coach-1",
		Attendees:   []string{userID},
		StartTime:   start,
		Duration:    duration,
		Status:      models.SessionCompleted,
		Assessments: assessments,
	}
}

func TestDayName(t *testing.T) {
	testCases := []struct {
		date     time.Time
		expected string
	}{
		{time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), "Dim"},
		{time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "Lun"},
		{time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), "Mar"},
		{time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), "Mer"},
		{time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), "Jeu"},
		{time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), "Ven"},
		{time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), "Sam"},
	}

	for _, tc := range testCases {
		if got := DayName(tc.date); got != tc.expected {
			t.Errorf("DayName(%v) = %q, expected %q", tc.date, got, tc.expected)
		}
	}
}

func TestStartOfDayUsesUTC(t *testing.T) {
	paris := time.FixedZone("CET", 3600)
	late := time.Date(2025, 3, 11, 0, 30, 0, 0, paris) // 23:30 UTC the day before

	got := StartOfDay(late)
	expected := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(expected) {
		t.Errorf("StartOfDay = %v, expected %v", got, expected)
	}
}

func TestBuildDailyStatsEmptyUser(t *testing.T) {
	stats := BuildDailyStats("u1", nil, nil, testNow)

	if len(stats) != ChartDays {
		t.Fatalf("Expected %d points, got %d", ChartDays, len(stats))
	}
	expectedNames := []string{"Mar", "Mer", "Jeu", "Ven", "Sam", "Dim", "Lun"}
	for i, d := range stats {
		if d.Name != expectedNames[i] {
			t.Errorf("Point %d named %q, expected %q", i, d.Name, expectedNames[i])
		}
		if d.Energy != 0 || d.Focus != 0 {
			t.Errorf("Point %d = energy %d focus %d, expected zeros", i, d.Energy, d.Focus)
		}
	}
	if !stats[ChartDays-1].Date.Equal(StartOfDay(testNow)) {
		t.Errorf("Last point dated %v, expected today %v", stats[ChartDays-1].Date, StartOfDay(testNow))
	}
}

func TestBuildDailyStatsFromAssessments(t *testing.T) {
	session := completedSession("u1", testNow.Add(-2*time.Hour), 60, models.Assessment{
		RaterID:      "coach-1",
		TargetID:     "u1",
		Leadership:   8,
		Communication: 7,
		Adaptability: 9,
		EmotionalInt: 8,
	})

	stats := BuildDailyStats("u1", []models.CoachingSession{session}, nil, testNow)
	today := stats[ChartDays-1]

	if today.Energy != 85 {
		t.Errorf("Expected energy 85 from (8+9)/2*10, got %d", today.Energy)
	}
	if today.Focus != 75 {
		t.Errorf("Expected focus 75 from (7+8)/2*10, got %d", today.Focus)
	}
}

func TestBuildDailyStatsMoodOverridesAssessments(t *testing.T) {
	session := completedSession("u1", testNow.Add(-2*time.Hour), 60, models.Assessment{
		TargetID:     "u1",
		Leadership:   8,
		Communication: 7,
		Adaptability: 9,
		EmotionalInt: 8,
	})
	logs := []models.EnergyLog{{UserID: "u1", Date: StartOfDay(testNow), Mood: models.MoodMedium}}

	stats := BuildDailyStats("u1", []models.CoachingSession{session}, logs, testNow)
	today := stats[ChartDays-1]

	if today.Energy != 66 {
		t.Errorf("Expected mood check to win with energy 66, got %d", today.Energy)
	}
	if today.Focus != 75 {
		t.Errorf("Expected focus 75 untouched by mood, got %d", today.Focus)
	}
}

func TestBuildDailyStatsMoodScale(t *testing.T) {
	testCases := []struct {
		mood     int
		expected int
	}{
		{models.MoodLow, 33},
		{models.MoodMedium, 66},
		{models.MoodHigh, 99},
	}

	for _, tc := range testCases {
		logs := []models.EnergyLog{{UserID: "u1", Date: StartOfDay(testNow), Mood: tc.mood}}
		stats := BuildDailyStats("u1", nil, logs, testNow)
		if got := stats[ChartDays-1].Energy; got != tc.expected {
			t.Errorf("Mood %d gave energy %d, expected %d", tc.mood, got, tc.expected)
		}
	}
}

func TestBuildDailyStatsClampsMaxedAssessments(t *testing.T) {
	session := completedSession("u1", testNow.Add(-time.Hour), 60, models.Assessment{
		TargetID:     "u1",
		Leadership:   10,
		Communication: 10,
		Adaptability: 10,
		EmotionalInt: 10,
	})

	stats := BuildDailyStats("u1", []models.CoachingSession{session}, nil, testNow)
	today := stats[ChartDays-1]

	if today.Energy != 100 || today.Focus != 100 {
		t.Errorf("Expected 100/100 for maxed scores, got %d/%d", today.Energy, today.Focus)
	}
}

func TestBuildDailyStatsFocusHeuristicWithoutAssessments(t *testing.T) {
	sessions := []models.CoachingSession{
		completedSession("u1", testNow.Add(-3*time.Hour), 30),
		completedSession("u1", testNow.Add(-1*time.Hour), 30),
	}

	stats := BuildDailyStats("u1", sessions, nil, testNow)
	today := stats[ChartDays-1]

	if today.Focus != 2*FocusPerSession {
		t.Errorf("Expected focus %d from two sessions, got %d", 2*FocusPerSession, today.Focus)
	}
	if today.Energy != 0 {
		t.Errorf("Expected energy 0 without mood or assessments, got %d", today.Energy)
	}
}

func TestBuildDailyStatsIgnoresScheduledSessions(t *testing.T) {
	session := completedSession("u1", testNow.Add(-time.Hour), 60, models.Assessment{
		TargetID: "u1", Leadership: 10, Communication: 10, Adaptability: 10, EmotionalInt: 10,
	})
	session.Status = models.SessionScheduled

	stats := BuildDailyStats("u1", []models.CoachingSession{session}, nil, testNow)
	today := stats[ChartDays-1]

	if today.Energy != 0 || today.Focus != 0 {
		t.Errorf("Expected scheduled session ignored, got energy %d focus %d", today.Energy, today.Focus)
	}
}

func TestBuildDailyStatsIgnoresAssessmentsForOthers(t *testing.T) {
	session := completedSession("u1", testNow.Add(-time.Hour), 60, models.Assessment{
		TargetID: "someone-else", Leadership: 10, Communication: 10, Adaptability: 10, EmotionalInt: 10,
	})

	stats := BuildDailyStats("u1", []models.CoachingSession{session}, nil, testNow)
	today := stats[ChartDays-1]

	if today.Energy != 0 {
		t.Errorf("Expected energy 0, got %d", today.Energy)
	}
	if today.Focus != FocusPerSession {
		t.Errorf("Expected heuristic focus %d, got %d", FocusPerSession, today.Focus)
	}
}

func TestEnergyLabel(t *testing.T) {
	testCases := []struct {
		name     string
		energies []int
		expected string
	}{
		{"no data", []int{0, 0, 0, 0, 0, 0, 0}, EnergyLow},
		{"high average", []int{80, 90, 0, 0, 0, 0, 0}, EnergyHigh},
		{"exactly 75 is high", []int{75, 0, 0, 0, 0, 0, 0}, EnergyHigh},
		{"medium average", []int{50, 60, 0, 0, 0, 0, 0}, EnergyMedium},
		{"exactly 40 is medium", []int{40, 0, 0, 0, 0, 0, 0}, EnergyMedium},
		{"low average", []int{33, 20, 0, 0, 0, 0, 0}, EnergyLow},
		{"zero days do not dilute", []int{99, 99, 0, 0, 0, 0, 0}, EnergyHigh},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stats := make([]DailyStat, len(tc.energies))
			for i, e := range tc.energies {
				stats[i] = DailyStat{Energy: e}
			}
			if got := EnergyLabel(stats); got != tc.expected {
				t.Errorf("EnergyLabel(%v) = %q, expected %q", tc.energies, got, tc.expected)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	testCases := []struct {
		minutes  int
		expected string
	}{
		{0, "0h 0m"},
		{45, "0h 45m"},
		{60, "1h 0m"},
		{135, "2h 15m"},
		{605, "10h 5m"},
	}

	for _, tc := range testCases {
		if got := FormatMinutes(tc.minutes); got != tc.expected {
			t.Errorf("FormatMinutes(%d) = %q, expected %q", tc.minutes, got, tc.expected)
		}
	}
}

func TestTotalLearningMinutes(t *testing.T) {
	sessions := []models.CoachingSession{
		completedSession("u1", testNow, 60),
		{Status: models.SessionScheduled, Duration: 999},
	}
	entries := []models.CourseProgress{
		{CourseID: "c1", CompletedLessonIDs: []string{"l1", "l2"}},
		{CourseID: "c2"},
	}

	got := TotalLearningMinutes(sessions, entries)
	if got != 60+2*MinutesPerLesson {
		t.Errorf("Expected %d minutes, got %d", 60+2*MinutesPerLesson, got)
	}
}

func TestCompletionRate(t *testing.T) {
	testCases := []struct {
		name     string
		progress []int
		expected int
	}{
		{"no entries", nil, 0},
		{"single entry", []int{40}, 40},
		{"mean of two", []int{100, 50}, 75},
		{"rounds half up", []int{67, 66}, 67},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entries := make([]models.CourseProgress, len(tc.progress))
			for i, p := range tc.progress {
				entries[i] = models.CourseProgress{Progress: p}
			}
			if got := CompletionRate(entries); got != tc.expected {
				t.Errorf("CompletionRate = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestCompute(t *testing.T) {
	session := completedSession("u1", testNow.Add(-2*time.Hour), 45, models.Assessment{
		TargetID:     "u1",
		Leadership:   8,
		Communication: 7,
		Adaptability: 9,
		EmotionalInt: 8,
	})
	entries := []models.CourseProgress{
		{CourseID: "c1", CompletedLessonIDs: []string{"l1"}, Progress: 50},
	}

	stats := Compute("u1", entries, []models.CoachingSession{session}, nil, testNow)

	if stats.LearningTime != "1h 0m" {
		t.Errorf("Expected learning time \"1h 0m\", got %q", stats.LearningTime)
	}
	if stats.CompletionRate != "50%" {
		t.Errorf("Expected completion rate \"50%%\", got %q", stats.CompletionRate)
	}
	if stats.EnergyLevel != EnergyHigh {
		t.Errorf("Expected energy level %q from the single 85 day, got %q", EnergyHigh, stats.EnergyLevel)
	}
	if len(stats.ChartData) != ChartDays {
		t.Errorf("Expected %d chart points, got %d", ChartDays, len(stats.ChartData))
	}
}

func TestComputeEmptyUser(t *testing.T) {
	stats := Compute("u1", nil, nil, nil, testNow)

	if stats.LearningTime != "0h 0m" {
		t.Errorf("Expected \"0h 0m\", got %q", stats.LearningTime)
	}
	if stats.CompletionRate != "0%" {
		t.Errorf("Expected \"0%%\", got %q", stats.CompletionRate)
	}
	if stats.EnergyLevel != EnergyLow {
		t.Errorf("Expected %q, got %q", EnergyLow, stats.EnergyLevel)
	}
}
