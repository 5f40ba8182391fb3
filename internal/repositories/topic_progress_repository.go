package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

type topicProgressRepository struct {
	db *sql.DB
}

// NewTopicProgressRepository creates a new topic progress repository
func NewTopicProgressRepository(db *sql.DB) *topicProgressRepository {
	return &topicProgressRepository{
		db: db,
	}
}

// MarkCompleted records a topic as completed for a user in a course.
// INSERT IGNORE against the composite primary key makes the write an atomic
// set-insert: duplicate and concurrent calls for the same key converge to the
// same row with no locking.
func (r *topicProgressRepository) MarkCompleted(ctx context.Context, userID, courseID, topicID int) error {
	query := `
		INSERT IGNORE INTO topic_progress (user_id, course_id, topic_id)
		VALUES (?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, userID, courseID, topicID)
	if err != nil {
		return fmt.Errorf("failed to mark topic completed: %w", err)
	}

	return nil
}

// IsCompleted checks whether a topic is completed for a user in a course
func (r *topicProgressRepository) IsCompleted(ctx context.Context, userID, courseID, topicID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM topic_progress WHERE user_id = ? AND course_id = ? AND topic_id = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, userID, courseID, topicID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check topic completion: %w", err)
	}

	return exists, nil
}

// CompletedTopics retrieves the completed topic IDs for a user in a course
func (r *topicProgressRepository) CompletedTopics(ctx context.Context, userID, courseID int) ([]int, error) {
	query := `
		SELECT topic_id
		FROM topic_progress
		WHERE user_id = ? AND course_id = ?
		ORDER BY topic_id
	`

	rows, err := r.db.QueryContext(ctx, query, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed topics: %w", err)
	}
	defer rows.Close()

	var topicIDs []int
	for rows.Next() {
		var topicID int
		if err := rows.Scan(&topicID); err != nil {
			return nil, fmt.Errorf("failed to scan topic id: %w", err)
		}
		topicIDs = append(topicIDs, topicID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return topicIDs, nil
}
