package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/skillvalley/training-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNewQuizService(t *testing.T) {
	catalogRepo := &mockCatalogRepository{}

	svc := NewQuizService(catalogRepo)

	assert.NotNil(t, svc)
	assert.Equal(t, catalogRepo, svc.catalogRepo)
}

func TestQuizService_GradeAnswer(t *testing.T) {
	tests := []struct {
		name           string
		catalogRepo    *mockCatalogRepository
		topicID        int
		questionID     int
		selectedOption int
		expectedError  error
		expected       models.GradeResult
	}{
		{
			name:           "correct answer",
			catalogRepo:    &mockCatalogRepository{shape: newTestShape(false, 70)},
			topicID:        12,
			questionID:     101,
			selectedOption: 0,
			expected:       models.GradeResult{IsCorrect: true, PointsEarned: 1},
		},
		{
			name:           "incorrect answer",
			catalogRepo:    &mockCatalogRepository{shape: newTestShape(false, 70)},
			topicID:        12,
			questionID:     101,
			selectedOption: 1,
			expected:       models.GradeResult{IsCorrect: false, PointsEarned: 0},
		},
		{
			name:           "selection out of range",
			catalogRepo:    &mockCatalogRepository{shape: newTestShape(false, 70)},
			topicID:        12,
			questionID:     101,
			selectedOption: 9,
			expectedError:  ErrInvalidSelection,
		},
		{
			name:          "unknown course",
			catalogRepo:   &mockCatalogRepository{err: fmt.Errorf("failed to get course: %w", sql.ErrNoRows)},
			topicID:       12,
			questionID:    101,
			expectedError: ErrUnknownCourse,
		},
		{
			name:          "unknown topic",
			catalogRepo:   &mockCatalogRepository{shape: newTestShape(false, 70)},
			topicID:       999,
			questionID:    101,
			expectedError: ErrUnknownTopic,
		},
		{
			name:          "unknown question",
			catalogRepo:   &mockCatalogRepository{shape: newTestShape(false, 70)},
			topicID:       12,
			questionID:    999,
			expectedError: ErrUnknownQuestion,
		},
		{
			name:          "question from another topic",
			catalogRepo:   &mockCatalogRepository{shape: newTestShape(false, 70)},
			topicID:       12,
			questionID:    201,
			expectedError: ErrUnknownQuestion,
		},
		{
			name:          "catalog failure",
			catalogRepo:   &mockCatalogRepository{err: errors.New("database error")},
			topicID:       12,
			questionID:    101,
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQuizService(tt.catalogRepo)

			result, err := svc.GradeAnswer(context.Background(), 1, tt.topicID, tt.questionID, tt.selectedOption)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
			case tt.catalogRepo.err != nil:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestQuizService_ScoreAttempt(t *testing.T) {
	tests := []struct {
		name          string
		catalogRepo   *mockCatalogRepository
		topicID       int
		answers       map[int]int
		expectedError error
		expected      models.AttemptScore
	}{
		{
			name:        "full correct attempt",
			catalogRepo: &mockCatalogRepository{shape: newTestShape(false, 70)},
			topicID:     12,
			answers:     map[int]int{101: 0, 102: 1},
			expected: models.AttemptScore{
				ScorePercent:  100,
				HasQuiz:       true,
				IsFinal:       true,
				AnsweredCount: 2,
				TotalCount:    2,
			},
		},
		{
			name:        "partial attempt is scored but not final",
			catalogRepo: &mockCatalogRepository{shape: newTestShape(false, 70)},
			topicID:     12,
			answers:     map[int]int{101: 0},
			expected: models.AttemptScore{
				ScorePercent:  50,
				HasQuiz:       true,
				IsFinal:       false,
				AnsweredCount: 1,
				TotalCount:    2,
			},
		},
		{
			name:        "quizless topic has no score",
			catalogRepo: &mockCatalogRepository{shape: newTestShape(false, 70)},
			topicID:     11,
			answers:     map[int]int{},
			expected:    models.AttemptScore{HasQuiz: false},
		},
		{
			name:          "answer for foreign question rejected",
			catalogRepo:   &mockCatalogRepository{shape: newTestShape(false, 70)},
			topicID:       12,
			answers:       map[int]int{101: 0, 201: 0},
			expectedError: ErrUnknownQuestion,
		},
		{
			name:          "unknown topic",
			catalogRepo:   &mockCatalogRepository{shape: newTestShape(false, 70)},
			topicID:       999,
			answers:       map[int]int{},
			expectedError: ErrUnknownTopic,
		},
		{
			name:          "unknown course",
			catalogRepo:   &mockCatalogRepository{err: fmt.Errorf("failed to get course: %w", sql.ErrNoRows)},
			topicID:       12,
			answers:       map[int]int{},
			expectedError: ErrUnknownCourse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQuizService(tt.catalogRepo)

			score, err := svc.ScoreAttempt(context.Background(), 1, tt.topicID, tt.answers)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, score)
			}
		})
	}
}
