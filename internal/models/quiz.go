package models

// Completion failure reasons surfaced to the caller
const (
	ReasonScoreBelowThreshold   = "ScoreBelowThreshold"
	ReasonPredecessorIncomplete = "PredecessorIncomplete"
)

// GradeAnswerRequest represents a request to grade a single quiz answer
type GradeAnswerRequest struct {
	QuestionID     int `json:"questionId"`
	SelectedOption int `json:"selectedOption"`
}

// GradeResult represents the grading outcome for a single answer
type GradeResult struct {
	IsCorrect    bool `json:"isCorrect"`
	PointsEarned int  `json:"pointsEarned"`
}

// ScoreAttemptRequest represents a quiz attempt: selected option per question ID
type ScoreAttemptRequest struct {
	Answers map[int]int `json:"answers"`
}

// AttemptScore represents the aggregated score of a quiz attempt.
// A score is only eligible for completion gating when IsFinal is true.
// HasQuiz is false for topics without quiz questions; such topics carry no
// score at all.
type AttemptScore struct {
	ScorePercent  int  `json:"scorePercent"`
	HasQuiz       bool `json:"hasQuiz"`
	IsFinal       bool `json:"isFinal"`
	AnsweredCount int  `json:"answeredCount"`
	TotalCount    int  `json:"totalCount"`
}

// CompleteTopicRequest represents a completion attempt: either a full quiz
// attempt (Answers) for quiz-bearing topics, or an explicit viewed signal for
// topics without a quiz.
type CompleteTopicRequest struct {
	Answers map[int]int `json:"answers,omitempty"`
	Viewed  bool        `json:"viewed,omitempty"`
}

// CompletionResult represents the outcome of a completion attempt
type CompletionResult struct {
	Completed bool   `json:"completed"`
	Reason    string `json:"reason,omitempty"`
}
