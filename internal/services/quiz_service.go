package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/skillvalley/training-service/internal/models"
)

// CatalogRepository defines read access to the content catalog
type CatalogRepository interface {
	// GetCourseShape retrieves the full content tree of a course.
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns the indexed course shape and an error if any. A missing course
	// is reported with sql.ErrNoRows in the error chain.
	GetCourseShape(ctx context.Context, courseID int) (*models.CourseShape, error)
}

// quizService implements answer grading and attempt scoring against the catalog
type quizService struct {
	catalogRepo CatalogRepository
}

// NewQuizService creates a new quiz service
func NewQuizService(catalogRepo CatalogRepository) *quizService {
	return &quizService{
		catalogRepo: catalogRepo,
	}
}

// GradeAnswer grades a single selected option against one of a topic's quiz questions
func (s *quizService) GradeAnswer(ctx context.Context, courseID, topicID, questionID, selectedOption int) (models.GradeResult, error) {
	shape, err := resolveShape(ctx, s.catalogRepo, courseID)
	if err != nil {
		return models.GradeResult{}, err
	}

	question, err := findQuestion(shape, topicID, questionID)
	if err != nil {
		return models.GradeResult{}, err
	}

	return GradeAnswer(question, selectedOption)
}

// ScoreAttempt scores a quiz attempt for a topic. Partial attempts are scored
// for display; only a final attempt can drive completion.
func (s *quizService) ScoreAttempt(ctx context.Context, courseID, topicID int, answers map[int]int) (models.AttemptScore, error) {
	shape, err := resolveShape(ctx, s.catalogRepo, courseID)
	if err != nil {
		return models.AttemptScore{}, err
	}

	if _, ok := shape.Topic(topicID); !ok {
		return models.AttemptScore{}, fmt.Errorf("%w: topic %d", ErrUnknownTopic, topicID)
	}

	questions := shape.Questions(topicID)
	if err := checkAnswerKeys(questions, answers); err != nil {
		return models.AttemptScore{}, err
	}

	return ScoreAttempt(questions, answers)
}

// resolveShape loads a course shape and maps a missing course to ErrUnknownCourse
func resolveShape(ctx context.Context, repo CatalogRepository, courseID int) (*models.CourseShape, error) {
	shape, err := repo.GetCourseShape(ctx, courseID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: course %d", ErrUnknownCourse, courseID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load course shape: %w", err)
	}
	return shape, nil
}

// findQuestion locates a quiz question inside a topic's quiz
func findQuestion(shape *models.CourseShape, topicID, questionID int) (models.QuizQuestion, error) {
	if _, ok := shape.Topic(topicID); !ok {
		return models.QuizQuestion{}, fmt.Errorf("%w: topic %d", ErrUnknownTopic, topicID)
	}

	for _, q := range shape.Questions(topicID) {
		if q.ID == questionID {
			return q, nil
		}
	}

	return models.QuizQuestion{}, fmt.Errorf("%w: question %d", ErrUnknownQuestion, questionID)
}

// checkAnswerKeys rejects attempts referencing questions outside the topic's quiz
func checkAnswerKeys(questions []models.QuizQuestion, answers map[int]int) error {
	known := make(map[int]bool, len(questions))
	for _, q := range questions {
		known[q.ID] = true
	}

	for questionID := range answers {
		if !known[questionID] {
			return fmt.Errorf("%w: question %d", ErrUnknownQuestion, questionID)
		}
	}

	return nil
}
