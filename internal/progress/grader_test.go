package progress

import (
	"testing"

	"learning-service/internal/models"
)

func quizQuestions() []models.QuizQuestion {
	return []models.QuizQuestion{
		{ID: "q1", Question: "Q1", Options: []string{"a", "b", "c"}, CorrectAnswerIndex: 0},
		{ID: "q2", Question: "Q2", Options: []string{"a", "b", "c"}, CorrectAnswerIndex: 1},
		{ID: "q3", Question: "Q3", Options: []string{"a", "b", "c"}, CorrectAnswerIndex: 2},
	}
}

func TestGrade(t *testing.T) {
	testCases := []struct {
		name          string
		answers       map[string]int
		expectedScore int
		expectPassed  bool
	}{
		{"all correct", map[string]int{"q1": 0, "q2": 1, "q3": 2}, 100, true},
		{"all wrong", map[string]int{"q1": 1, "q2": 0, "q3": 0}, 0, false},
		{"two of three fails threshold", map[string]int{"q1": 0, "q2": 1, "q3": 0}, 67, false},
		{"missing answers count as wrong", map[string]int{"q1": 0}, 33, false},
		{"no answers at all", map[string]int{}, 0, false},
		{"unknown question ids are ignored", map[string]int{"q1": 0, "q2": 1, "q3": 2, "ghost": 0}, 100, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Grade(quizQuestions(), tc.answers)
			if result.Score != tc.expectedScore {
				t.Errorf("Expected score %d, got %d", tc.expectedScore, result.Score)
			}
			if result.Passed != tc.expectPassed {
				t.Errorf("Expected passed=%v, got %v", tc.expectPassed, result.Passed)
			}
			if result.Passed != (result.Score >= PassThreshold) {
				t.Errorf("passed must equal score >= %d, got score=%d passed=%v", PassThreshold, result.Score, result.Passed)
			}
			if len(result.Results) != len(quizQuestions()) {
				t.Errorf("Expected %d per-question results, got %d", len(quizQuestions()), len(result.Results))
			}
		})
	}
}

func TestGradeExactThreshold(t *testing.T) {
	questions := make([]models.QuizQuestion, 10)
	answers := map[string]int{}
	for i := range questions {
		id := string(rune('a' + i))
		questions[i] = models.QuizQuestion{ID: id, CorrectAnswerIndex: 1}
		if i < 7 {
			answers[id] = 1
		}
	}

	result := Grade(questions, answers)
	if result.Score != 70 {
		t.Fatalf("Expected score 70, got %d", result.Score)
	}
	if !result.Passed {
		t.Error("Expected a score of exactly 70 to pass")
	}
}

func TestGradeZeroQuestions(t *testing.T) {
	result := Grade(nil, map[string]int{"q1": 0})

	if result.Score != 0 {
		t.Errorf("Expected score 0 for an empty quiz, got %d", result.Score)
	}
	if result.Passed {
		t.Error("Expected an empty quiz to never pass")
	}
	if len(result.Results) != 0 {
		t.Errorf("Expected no per-question results, got %d", len(result.Results))
	}
}

func TestGradeReportsCorrectAnswers(t *testing.T) {
	result := Grade(quizQuestions(), map[string]int{"q1": 2})

	for i, q := range quizQuestions() {
		if result.Results[i].QuestionID != q.ID {
			t.Errorf("Expected result %d for question %s, got %s", i, q.ID, result.Results[i].QuestionID)
		}
		if result.Results[i].CorrectAnswer != q.CorrectAnswerIndex {
			t.Errorf("Expected correct answer %d for %s, got %d", q.CorrectAnswerIndex, q.ID, result.Results[i].CorrectAnswer)
		}
		if result.Results[i].IsCorrect {
			t.Errorf("Expected %s to be marked incorrect", q.ID)
		}
	}
}

func TestGradeIsOrderInvariant(t *testing.T) {
	// Build the same answer set through different insertion orders.
	forward := map[string]int{}
	forward["q1"] = 0
	forward["q2"] = 1
	forward["q3"] = 0

	backward := map[string]int{}
	backward["q3"] = 0
	backward["q2"] = 1
	backward["q1"] = 0

	a := Grade(quizQuestions(), forward)
	b := Grade(quizQuestions(), backward)

	if a.Score != b.Score || a.Passed != b.Passed {
		t.Errorf("Expected identical grades, got %+v and %+v", a, b)
	}
}
