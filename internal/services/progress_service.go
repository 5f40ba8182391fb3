package services

import (
	"context"
	"fmt"
	"time"

	"github.com/skillvalley/training-service/internal/models"
	"go.uber.org/zap"
)

// ProgressLedgerRepository defines access to the durable per-user-per-course
// record of completed topics. MarkCompleted must be an idempotent set-insert.
type ProgressLedgerRepository interface {
	// MarkCompleted records a topic as completed for a user. Recording an
	// already-completed topic is a no-op, not an error.
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	// "topicID" is the ID of the topic.
	//
	// Returns an error if any.
	MarkCompleted(ctx context.Context, userID, courseID, topicID int) error
	// IsCompleted checks whether a topic is completed for a user.
	//
	// Please reference MarkCompleted for parameter descriptions.
	//
	// Returns a boolean and an error if any.
	IsCompleted(ctx context.Context, userID, courseID, topicID int) (bool, error)
	// CompletedTopics retrieves the set of completed topic IDs for a user in a course.
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	//
	// Returns the completed topic IDs and an error if any.
	CompletedTopics(ctx context.Context, userID, courseID int) ([]int, error)
}

// ledger write retry policy: writes are idempotent, so a timed-out or failed
// write is safely re-issued
const (
	ledgerWriteAttempts = 3
	ledgerRetryBackoff  = 100 * time.Millisecond
)

// progressService implements completion attempts and progress reads
type progressService struct {
	catalogRepo CatalogRepository
	ledgerRepo  ProgressLedgerRepository
	logger      *zap.Logger
}

// NewProgressService creates a new progress service
func NewProgressService(catalogRepo CatalogRepository, ledgerRepo ProgressLedgerRepository, logger *zap.Logger) *progressService {
	return &progressService{
		catalogRepo: catalogRepo,
		ledgerRepo:  ledgerRepo,
		logger:      logger,
	}
}

// AttemptCompletion runs the completion gate for one topic and, on a pass,
// records it in the progress ledger.
//
// For quiz-bearing topics the request must carry a full attempt; for quizless
// topics it must carry the explicit viewed signal. Failing outcomes (score
// below threshold, predecessor incomplete) are reported in the result, leave
// the ledger untouched, and may be retried by the caller with a new attempt.
func (s *progressService) AttemptCompletion(ctx context.Context, userID, courseID, topicID int, req models.CompleteTopicRequest) (models.CompletionResult, error) {
	shape, err := resolveShape(ctx, s.catalogRepo, courseID)
	if err != nil {
		return models.CompletionResult{}, err
	}

	if _, ok := shape.Topic(topicID); !ok {
		return models.CompletionResult{}, fmt.Errorf("%w: topic %d", ErrUnknownTopic, topicID)
	}

	// Score the attempt before reading completion state. The predecessor
	// check below can then only race toward a spurious (retryable) rejection,
	// never toward a false completion.
	var score *models.AttemptScore
	if shape.HasQuiz(topicID) {
		questions := shape.Questions(topicID)
		if err := checkAnswerKeys(questions, req.Answers); err != nil {
			return models.CompletionResult{}, err
		}
		attemptScore, err := ScoreAttempt(questions, req.Answers)
		if err != nil {
			return models.CompletionResult{}, err
		}
		score = &attemptScore
	}

	completed, err := s.completedSet(ctx, userID, courseID)
	if err != nil {
		return models.CompletionResult{}, err
	}

	result, err := EvaluateCompletion(shape, topicID, GateInput{
		Score:     score,
		Viewed:    req.Viewed,
		Completed: completed,
	})
	if err != nil {
		return models.CompletionResult{}, err
	}

	if result.Completed && !completed[topicID] {
		if err := s.markCompleted(ctx, userID, courseID, topicID); err != nil {
			// Never report completion that is not durably committed.
			return models.CompletionResult{}, err
		}
		s.logger.Info("topic completed",
			zap.Int("user_id", userID),
			zap.Int("course_id", courseID),
			zap.Int("topic_id", topicID),
		)
	}

	return result, nil
}

// GetProgress derives a user's module and course completion state from the
// ledger and the current catalog shape. This read path is the single source
// of truth: it reflects only durably committed ledger writes.
func (s *progressService) GetProgress(ctx context.Context, userID, courseID int) (*models.ProgressResponse, error) {
	shape, err := resolveShape(ctx, s.catalogRepo, courseID)
	if err != nil {
		return nil, err
	}

	topicIDs, err := s.ledgerRepo.CompletedTopics(ctx, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}

	completed := make(map[int]bool, len(topicIDs))
	for _, id := range topicIDs {
		completed[id] = true
	}

	resp := AggregateProgress(shape, completed)
	resp.CompletedTopicIDs = topicIDs
	if resp.CompletedTopicIDs == nil {
		resp.CompletedTopicIDs = []int{}
	}
	return resp, nil
}

// completedSet loads the user's completed topics as a set
func (s *progressService) completedSet(ctx context.Context, userID, courseID int) (map[int]bool, error) {
	topicIDs, err := s.ledgerRepo.CompletedTopics(ctx, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}

	completed := make(map[int]bool, len(topicIDs))
	for _, id := range topicIDs {
		completed[id] = true
	}
	return completed, nil
}

// markCompleted writes to the ledger with retry. A failed or timed-out write
// has unknown outcome, and re-issuing it is safe because the write is an
// idempotent set-insert.
func (s *progressService) markCompleted(ctx context.Context, userID, courseID, topicID int) error {
	var lastErr error
	for attempt := 1; attempt <= ledgerWriteAttempts; attempt++ {
		lastErr = s.ledgerRepo.MarkCompleted(ctx, userID, courseID, topicID)
		if lastErr == nil {
			return nil
		}

		s.logger.Warn("ledger write failed",
			zap.Int("attempt", attempt),
			zap.Int("user_id", userID),
			zap.Int("course_id", courseID),
			zap.Int("topic_id", topicID),
			zap.Error(lastErr),
		)

		if attempt == ledgerWriteAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrLedgerUnavailable, ctx.Err())
		case <-time.After(time.Duration(attempt) * ledgerRetryBackoff):
		}
	}

	return fmt.Errorf("%w: %v", ErrLedgerUnavailable, lastErr)
}
