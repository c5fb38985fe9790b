package progress

import (
	"reflect"
	"testing"
	"time"

	"learning-service/internal/models"
)

func courseWithLessons(ids ...string) *models.Course {
	lessons := make([]models.Lesson, 0, len(ids))
	for _, id := range ids {
		lessons = append(lessons, models.Lesson{ID: id, Title: id, Type: models.ContentLesson})
	}
	return &models.Course{
		CourseID: "c1",
		Title:    "Leadership Foundations",
		Modules: []models.CourseModule{
			{ID: "m1", Title: "Module 1", Lessons: lessons},
		},
	}
}

func TestPercentage(t *testing.T) {
	testCases := []struct {
		name      string
		completed []string
		lessons   []string
		expected  int
	}{
		{"no lessons is vacuously complete", nil, nil, 100},
		{"no lessons with stale completions", []string{"l1"}, nil, 100},
		{"nothing completed", nil, []string{"l1", "l2"}, 0},
		{"one of four", []string{"l1"}, []string{"l1", "l2", "l3", "l4"}, 25},
		{"two of three rounds up", []string{"l1", "l2"}, []string{"l1", "l2", "l3"}, 67},
		{"one of three rounds down", []string{"l1"}, []string{"l1", "l2", "l3"}, 33},
		{"all completed", []string{"l1", "l2"}, []string{"l1", "l2"}, 100},
		{"stale ids are ignored", []string{"l1", "deleted-1", "deleted-2"}, []string{"l1", "l2"}, 50},
		{"duplicates count once", []string{"l1", "l1"}, []string{"l1", "l2"}, 50},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Percentage(tc.completed, tc.lessons)
			if got != tc.expected {
				t.Errorf("Percentage(%v, %v) = %d, expected %d", tc.completed, tc.lessons, got, tc.expected)
			}
		})
	}
}

func TestToggleLessonIsItsOwnInverse(t *testing.T) {
	course := courseWithLessons("l1", "l2", "l3")
	now := time.Now().UTC()
	entry := NewEntry("c1", now)
	SetLessonCompleted(&entry, course, "l1", true, now)

	original := append([]string(nil), entry.CompletedLessonIDs...)
	originalProgress := entry.Progress

	first := ToggleLesson(&entry, course, "l2", now)
	if !first {
		t.Error("Expected first toggle to report completed")
	}
	if entry.Progress != 67 {
		t.Errorf("Expected progress 67 after first toggle, got %d", entry.Progress)
	}

	second := ToggleLesson(&entry, course, "l2", now)
	if second {
		t.Error("Expected second toggle to report not completed")
	}
	if !reflect.DeepEqual(entry.CompletedLessonIDs, original) {
		t.Errorf("Expected completed set restored to %v, got %v", original, entry.CompletedLessonIDs)
	}
	if entry.Progress != originalProgress {
		t.Errorf("Expected progress restored to %d, got %d", originalProgress, entry.Progress)
	}
}

func TestSetLessonCompletedIsIdempotent(t *testing.T) {
	course := courseWithLessons("l1", "l2")
	now := time.Now().UTC()
	entry := NewEntry("c1", now)

	SetLessonCompleted(&entry, course, "l1", true, now)
	SetLessonCompleted(&entry, course, "l1", true, now)

	if len(entry.CompletedLessonIDs) != 1 {
		t.Errorf("Expected 1 completed lesson, got %d", len(entry.CompletedLessonIDs))
	}
	if entry.Progress != 50 {
		t.Errorf("Expected progress 50, got %d", entry.Progress)
	}
}

func TestSetLessonCompletedClearingAbsentIsNoOp(t *testing.T) {
	course := courseWithLessons("l1", "l2")
	now := time.Now().UTC()
	entry := NewEntry("c1", now)
	SetLessonCompleted(&entry, course, "l1", true, now)

	SetLessonCompleted(&entry, course, "l2", false, now)

	if !reflect.DeepEqual(entry.CompletedLessonIDs, []string{"l1"}) {
		t.Errorf("Expected completed set [l1], got %v", entry.CompletedLessonIDs)
	}
	if entry.Progress != 50 {
		t.Errorf("Expected progress 50, got %d", entry.Progress)
	}
}

func TestGetOrCreateNeverDuplicates(t *testing.T) {
	now := time.Now().UTC()
	user := &models.User{ID: "u1", Name: "Ada"}

	first := GetOrCreate(user, "c1", now)
	if first.Progress != 0 || first.Score != 0 || len(first.CompletedLessonIDs) != 0 {
		t.Errorf("Expected zeroed entry, got %+v", first)
	}

	first.CompletedLessonIDs = append(first.CompletedLessonIDs, "l1")
	second := GetOrCreate(user, "c1", now)

	if len(user.CoursesProgress) != 1 {
		t.Fatalf("Expected 1 ledger entry, got %d", len(user.CoursesProgress))
	}
	if len(second.CompletedLessonIDs) != 1 {
		t.Errorf("Expected the existing entry back, got %+v", second)
	}
}

func TestToggleRecomputesAgainstLiveCatalog(t *testing.T) {
	now := time.Now().UTC()
	entry := NewEntry("c1", now)
	// Entry carries a completion for a lesson the course no longer has.
	entry.CompletedLessonIDs = []string{"removed"}

	course := courseWithLessons("l1", "l2")
	ToggleLesson(&entry, course, "l1", now)

	if entry.Progress != 50 {
		t.Errorf("Expected progress 50 with stale id ignored, got %d", entry.Progress)
	}
	if !entry.HasLesson("removed") {
		t.Error("Expected stale id to stay in the completed set")
	}
}
