package services

import (
	"context"

	"github.com/skillvalley/training-service/internal/models"
)

// newTestShape builds a two-module course used across service tests:
// module 1 holds topic 11 (no quiz) and topic 12 (two questions),
// module 2 holds topic 21 (one question) and topic 22 (no quiz).
func newTestShape(sequential bool, passThreshold int) *models.CourseShape {
	course := models.Course{
		ID:                    1,
		Title:                 "Test Course",
		PassThreshold:         passThreshold,
		SequentialProgression: sequential,
		CertificateEnabled:    true,
	}
	modules := []models.Module{
		{ID: 1, CourseID: 1, Title: "Module One", ModuleOrder: 1},
		{ID: 2, CourseID: 1, Title: "Module Two", ModuleOrder: 2},
	}
	topics := []models.Topic{
		{ID: 11, ModuleID: 1, Title: "Intro", TopicOrder: 1},
		{ID: 12, ModuleID: 1, Title: "Basics Quiz", TopicOrder: 2},
		{ID: 21, ModuleID: 2, Title: "Advanced Quiz", TopicOrder: 1},
		{ID: 22, ModuleID: 2, Title: "Wrap Up", TopicOrder: 2},
	}
	questions := []models.QuizQuestion{
		{ID: 101, TopicID: 12, Prompt: "Q1", Options: []string{"a", "b"}, CorrectOption: 0, Weight: 1, QuestionOrder: 1},
		{ID: 102, TopicID: 12, Prompt: "Q2", Options: []string{"a", "b"}, CorrectOption: 1, Weight: 1, QuestionOrder: 2},
		{ID: 201, TopicID: 21, Prompt: "Q3", Options: []string{"a", "b", "c"}, CorrectOption: 2, Weight: 1, QuestionOrder: 1},
	}
	return models.NewCourseShape(course, modules, topics, questions)
}

// mockCatalogRepository is a mock implementation of CatalogRepository
type mockCatalogRepository struct {
	shape *models.CourseShape
	err   error
	calls int
}

func (m *mockCatalogRepository) GetCourseShape(ctx context.Context, courseID int) (*models.CourseShape, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.shape, nil
}

// mockLedgerRepository is a mock implementation of ProgressLedgerRepository
type mockLedgerRepository struct {
	completed []int
	marked    []int
	readErr   error
	writeErr  error
	// writeFailures makes the first N MarkCompleted calls fail before succeeding
	writeFailures int
	writeCalls    int
}

func (m *mockLedgerRepository) MarkCompleted(ctx context.Context, userID, courseID, topicID int) error {
	m.writeCalls++
	if m.writeErr != nil {
		return m.writeErr
	}
	if m.writeCalls <= m.writeFailures {
		return context.DeadlineExceeded
	}
	m.marked = append(m.marked, topicID)
	for _, id := range m.completed {
		if id == topicID {
			return nil
		}
	}
	m.completed = append(m.completed, topicID)
	return nil
}

func (m *mockLedgerRepository) IsCompleted(ctx context.Context, userID, courseID, topicID int) (bool, error) {
	if m.readErr != nil {
		return false, m.readErr
	}
	for _, id := range m.completed {
		if id == topicID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockLedgerRepository) CompletedTopics(ctx context.Context, userID, courseID int) ([]int, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.completed, nil
}
