package services

import (
	"fmt"

	"github.com/skillvalley/training-service/internal/models"
)

// GateInput carries everything the completion gate needs to decide one topic:
// the attempt score (nil for quizless topics), the explicit viewed signal, and
// the set of topics the user has already completed in this course.
type GateInput struct {
	Score     *models.AttemptScore
	Viewed    bool
	Completed map[int]bool
}

// EvaluateCompletion decides whether a topic transitions to Completed.
//
// A topic with a scorable quiz completes iff the final attempt score meets
// the course pass threshold. A topic without one (no questions, or questions
// with no scoring weight) completes only on the explicit viewed signal;
// content access is never inferred. When the course enforces
// sequential progression, the topic's immediate predecessor in catalog order
// must already be completed; the first topic of a course has no predecessor
// and is never blocked.
//
// The result reports failed transitions (score below threshold, predecessor
// incomplete) as reasons, not errors: they are expected user-facing outcomes.
func EvaluateCompletion(shape *models.CourseShape, topicID int, in GateInput) (models.CompletionResult, error) {
	if _, ok := shape.Topic(topicID); !ok {
		return models.CompletionResult{}, fmt.Errorf("%w: topic %d", ErrUnknownTopic, topicID)
	}

	// Re-attempting an already-completed topic is allowed for practice;
	// Completed is terminal, so a lower score never revokes it.
	if in.Completed[topicID] {
		return models.CompletionResult{Completed: true}, nil
	}

	if shape.Course.SequentialProgression {
		if pred, ok := shape.PredecessorOf(topicID); ok && !in.Completed[pred] {
			return models.CompletionResult{Reason: models.ReasonPredecessorIncomplete}, nil
		}
	}

	if !hasScorableQuiz(shape.Questions(topicID)) {
		if !in.Viewed {
			return models.CompletionResult{}, fmt.Errorf("%w: topic %d", ErrViewedSignalRequired, topicID)
		}
		return models.CompletionResult{Completed: true}, nil
	}

	if in.Score == nil || !in.Score.HasQuiz {
		return models.CompletionResult{}, fmt.Errorf("%w: topic %d requires a scored attempt", ErrIncompleteAttempt, topicID)
	}
	if !in.Score.IsFinal {
		return models.CompletionResult{}, fmt.Errorf("%w: %d of %d questions answered",
			ErrIncompleteAttempt, in.Score.AnsweredCount, in.Score.TotalCount)
	}

	threshold := shape.Course.PassThreshold
	if threshold <= 0 {
		threshold = models.DefaultPassThreshold
	}

	if in.Score.ScorePercent < threshold {
		return models.CompletionResult{Reason: models.ReasonScoreBelowThreshold}, nil
	}

	return models.CompletionResult{Completed: true}, nil
}
