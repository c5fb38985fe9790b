package progress

import (
	"math"

	"learning-service/internal/models"
)

// PassThreshold is the fixed passing grade for quizzes, in percent.
const PassThreshold = 70

type QuestionResult struct {
	QuestionID    string `json:"questionId"`
	IsCorrect     bool   `json:"isCorrect"`
	CorrectAnswer int    `json:"correctAnswer"`
}

type GradeResult struct {
	Score   int              `json:"score"`
	Passed  bool             `json:"passed"`
	Results []QuestionResult `json:"results"`
}

// Grade scores submitted answers against the quiz's answer key. Questions
// with no submitted answer count as incorrect. A quiz with no questions
// grades to score 0, not passed, instead of dividing by zero.
func Grade(questions []models.QuizQuestion, answers map[string]int) GradeResult {
	results := make([]QuestionResult, 0, len(questions))
	correct := 0
	for _, q := range questions {
		answer, ok := answers[q.ID]
		isCorrect := ok && answer == q.CorrectAnswerIndex
		if isCorrect {
			correct++
		}
		results = append(results, QuestionResult{
			QuestionID:    q.ID,
			IsCorrect:     isCorrect,
			CorrectAnswer: q.CorrectAnswerIndex,
		})
	}

	score := 0
	if len(questions) > 0 {
		score = int(math.Round(float64(correct) / float64(len(questions)) * 100))
	}
	return GradeResult{
		Score:   score,
		Passed:  score >= PassThreshold,
		Results: results,
	}
}
