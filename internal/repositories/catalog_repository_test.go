package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupCatalogTestRepository creates a catalog repository with a mock database
func setupCatalogTestRepository(t *testing.T) (*catalogRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewCatalogRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewCatalogRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewCatalogRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func expectCourseRow(mock sqlmock.Sqlmock, passThreshold interface{}) {
	rows := sqlmock.NewRows([]string{"id", "title", "pass_threshold", "sequential_progression", "certificate_enabled"}).
		AddRow(1, "Test Course", passThreshold, true, true)
	mock.ExpectQuery(`SELECT id, title, pass_threshold, sequential_progression, certificate_enabled FROM courses WHERE id = \? LIMIT 1`).
		WithArgs(1).
		WillReturnRows(rows)
}

func expectModuleRows(mock sqlmock.Sqlmock) {
	rows := sqlmock.NewRows([]string{"id", "course_id", "title", "module_order"}).
		AddRow(1, 1, "Module One", 1).
		AddRow(2, 1, "Module Two", 2)
	mock.ExpectQuery(`SELECT id, course_id, title, module_order FROM course_modules WHERE course_id = \? ORDER BY module_order, id`).
		WithArgs(1).
		WillReturnRows(rows)
}

func expectTopicRows(mock sqlmock.Sqlmock) {
	rows := sqlmock.NewRows([]string{"id", "module_id", "title", "topic_order"}).
		AddRow(10, 1, "Intro", 1).
		AddRow(11, 1, "Quiz Topic", 2).
		AddRow(20, 2, "Advanced", 1)
	mock.ExpectQuery(`SELECT t.id, t.module_id, t.title, t.topic_order FROM topics t JOIN course_modules m ON t.module_id = m.id WHERE m.course_id = \? ORDER BY t.topic_order, t.id`).
		WithArgs(1).
		WillReturnRows(rows)
}

func expectQuestionRows(mock sqlmock.Sqlmock) {
	rows := sqlmock.NewRows([]string{"id", "topic_id", "prompt", "options", "correct_option", "weight", "question_order"}).
		AddRow(100, 11, "Pick one", []byte(`["a","b","c"]`), 2, 1, 1)
	mock.ExpectQuery(`SELECT q.id, q.topic_id, q.prompt, q.options, q.correct_option, q.weight, q.question_order FROM quiz_questions q JOIN topics t ON q.topic_id = t.id JOIN course_modules m ON t.module_id = m.id WHERE m.course_id = \? ORDER BY q.question_order, q.id`).
		WithArgs(1).
		WillReturnRows(rows)
}

func TestCatalogRepository_GetCourseShape(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		errorContains string
		check         func(*testing.T, *catalogRepository, error)
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				expectCourseRow(mock, 80)
				expectModuleRows(mock)
				expectTopicRows(mock)
				expectQuestionRows(mock)
			},
			expectedError: false,
		},
		{
			name: "null pass threshold falls back to default",
			setupMock: func(mock sqlmock.Sqlmock) {
				expectCourseRow(mock, nil)
				expectModuleRows(mock)
				expectTopicRows(mock)
				expectQuestionRows(mock)
			},
			expectedError: false,
		},
		{
			name: "course not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, pass_threshold, sequential_progression, certificate_enabled FROM courses WHERE id = \? LIMIT 1`).
					WithArgs(1).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: true,
			errorContains: "failed to get course",
		},
		{
			name: "modules query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				expectCourseRow(mock, 80)
				mock.ExpectQuery(`SELECT id, course_id, title, module_order FROM course_modules WHERE course_id = \? ORDER BY module_order, id`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			errorContains: "failed to query modules",
		},
		{
			name: "topics query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				expectCourseRow(mock, 80)
				expectModuleRows(mock)
				mock.ExpectQuery(`SELECT t.id, t.module_id, t.title, t.topic_order FROM topics t JOIN course_modules m ON t.module_id = m.id WHERE m.course_id = \? ORDER BY t.topic_order, t.id`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			errorContains: "failed to query topics",
		},
		{
			name: "malformed options payload",
			setupMock: func(mock sqlmock.Sqlmock) {
				expectCourseRow(mock, 80)
				expectModuleRows(mock)
				expectTopicRows(mock)
				rows := sqlmock.NewRows([]string{"id", "topic_id", "prompt", "options", "correct_option", "weight", "question_order"}).
					AddRow(100, 11, "Pick one", []byte(`not-json`), 2, 1, 1)
				mock.ExpectQuery(`SELECT q.id, q.topic_id, q.prompt, q.options, q.correct_option, q.weight, q.question_order FROM quiz_questions q JOIN topics t ON q.topic_id = t.id JOIN course_modules m ON t.module_id = m.id WHERE m.course_id = \? ORDER BY q.question_order, q.id`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectedError: true,
			errorContains: "failed to decode options",
		},
		{
			name: "question scan error",
			setupMock: func(mock sqlmock.Sqlmock) {
				expectCourseRow(mock, 80)
				expectModuleRows(mock)
				expectTopicRows(mock)
				rows := sqlmock.NewRows([]string{"id", "topic_id", "prompt", "options", "correct_option", "weight", "question_order"}).
					AddRow("invalid", 11, "Pick one", []byte(`["a"]`), 0, 1, 1)
				mock.ExpectQuery(`SELECT q.id, q.topic_id, q.prompt, q.options, q.correct_option, q.weight, q.question_order FROM quiz_questions q JOIN topics t ON q.topic_id = t.id JOIN course_modules m ON t.module_id = m.id WHERE m.course_id = \? ORDER BY q.question_order, q.id`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectedError: true,
			errorContains: "failed to scan quiz question",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCatalogTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			shape, err := repo.GetCourseShape(context.Background(), 1)

			if tt.expectedError {
				assert.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Nil(t, shape)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, shape)
				assert.Equal(t, 1, shape.Course.ID)
				assert.Equal(t, []int{10, 11, 20}, shape.TopicIDs())
				assert.True(t, shape.HasQuiz(11))
				assert.False(t, shape.HasQuiz(10))
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCatalogRepository_GetCourseShape_DefaultThreshold(t *testing.T) {
	repo, mock, cleanup := setupCatalogTestRepository(t)
	defer cleanup()

	expectCourseRow(mock, nil)
	expectModuleRows(mock)
	expectTopicRows(mock)
	expectQuestionRows(mock)

	shape, err := repo.GetCourseShape(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 70, shape.Course.PassThreshold)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_GetCourseShape_NotFoundKeepsErrNoRows(t *testing.T) {
	repo, mock, cleanup := setupCatalogTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT id, title, pass_threshold, sequential_progression, certificate_enabled FROM courses WHERE id = \? LIMIT 1`).
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetCourseShape(context.Background(), 42)

	// Callers map a missing course by unwrapping to sql.ErrNoRows
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
