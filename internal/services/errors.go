package services

import "errors"

// Error kinds returned by the training engine. Handlers distinguish them with
// errors.Is; only ErrLedgerUnavailable is safe to retry automatically.
var (
	// ErrInvalidSelection indicates a selected option index outside the
	// question's option range (caller bug, not retried).
	ErrInvalidSelection = errors.New("selected option out of range")

	// ErrIncompleteAttempt indicates completion was attempted before every
	// question in the topic was answered.
	ErrIncompleteAttempt = errors.New("attempt does not answer every question")

	// ErrViewedSignalRequired indicates a completion attempt on a quizless
	// topic without the explicit viewed signal.
	ErrViewedSignalRequired = errors.New("topic has no quiz, explicit viewed signal required")

	// ErrUnknownCourse indicates a course ID not present in the content catalog.
	ErrUnknownCourse = errors.New("course not found")

	// ErrUnknownTopic indicates a topic ID outside the course's current shape.
	ErrUnknownTopic = errors.New("topic not found in course")

	// ErrUnknownQuestion indicates a question ID outside the topic's quiz.
	ErrUnknownQuestion = errors.New("question not found in topic")

	// ErrLedgerUnavailable indicates a progress storage failure. Retrying is
	// safe: ledger writes are idempotent set-inserts.
	ErrLedgerUnavailable = errors.New("progress ledger unavailable")
)
