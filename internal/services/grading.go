package services

import (
	"fmt"

	"github.com/skillvalley/training-service/internal/models"
)

// GradeAnswer grades one selected option against a quiz question. It is pure
// and deterministic: the same question and selection always produce the same
// result, so regrading within an attempt is harmless.
//
// Returns ErrInvalidSelection if the selected index is outside the question's
// option range.
func GradeAnswer(question models.QuizQuestion, selectedOption int) (models.GradeResult, error) {
	if selectedOption < 0 || selectedOption >= len(question.Options) {
		return models.GradeResult{}, fmt.Errorf("%w: question %d has %d options, got index %d",
			ErrInvalidSelection, question.ID, len(question.Options), selectedOption)
	}

	if selectedOption == question.CorrectOption {
		return models.GradeResult{IsCorrect: true, PointsEarned: question.Weight}, nil
	}

	return models.GradeResult{IsCorrect: false, PointsEarned: 0}, nil
}

// ScoreAttempt aggregates per-question grading results into a topic score.
//
// Unanswered questions earn no points but their weight still counts in the
// denominator, so a partial attempt can be scored for display. The score is
// only final (eligible for completion gating) when every question is answered.
//
// A topic with no quiz questions has no score at all; this is signaled with
// HasQuiz=false rather than 100% or 0%. The same applies when the questions
// carry no scoring weight: there is nothing to divide by, so the topic is
// reported as quizless and completion falls back to the viewed signal.
func ScoreAttempt(questions []models.QuizQuestion, answers map[int]int) (models.AttemptScore, error) {
	if len(questions) == 0 {
		return models.AttemptScore{HasQuiz: false}, nil
	}

	totalWeight := 0
	earned := 0
	answered := 0

	for _, q := range questions {
		totalWeight += q.Weight

		selected, ok := answers[q.ID]
		if !ok {
			continue
		}
		answered++

		result, err := GradeAnswer(q, selected)
		if err != nil {
			return models.AttemptScore{}, err
		}
		earned += result.PointsEarned
	}

	if totalWeight <= 0 {
		return models.AttemptScore{HasQuiz: false}, nil
	}

	return models.AttemptScore{
		ScorePercent:  percentRoundHalfUp(earned, totalWeight),
		HasQuiz:       true,
		IsFinal:       answered == len(questions),
		AnsweredCount: answered,
		TotalCount:    len(questions),
	}, nil
}

// percentRoundHalfUp computes round(100 * part / total) with half rounding up.
// total must be positive.
func percentRoundHalfUp(part, total int) int {
	return (200*part + total) / (2 * total)
}

// hasScorableQuiz reports whether a question set can produce a score at all.
// A topic with no questions, or whose questions carry no positive total
// weight, has nothing to grade against.
func hasScorableQuiz(questions []models.QuizQuestion) bool {
	totalWeight := 0
	for _, q := range questions {
		totalWeight += q.Weight
	}
	return len(questions) > 0 && totalWeight > 0
}
