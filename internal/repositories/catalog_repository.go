package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/skillvalley/training-service/internal/models"
)

type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new content catalog repository
func NewCatalogRepository(db *sql.DB) *catalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// GetCourseShape retrieves the full content tree of a course and builds the
// indexed shape. The catalog is read-only to this service; authoring happens
// elsewhere.
func (r *catalogRepository) GetCourseShape(ctx context.Context, courseID int) (*models.CourseShape, error) {
	course, err := r.getCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	modules, err := r.getModules(ctx, courseID)
	if err != nil {
		return nil, err
	}

	topics, err := r.getTopics(ctx, courseID)
	if err != nil {
		return nil, err
	}

	questions, err := r.getQuestions(ctx, courseID)
	if err != nil {
		return nil, err
	}

	return models.NewCourseShape(*course, modules, topics, questions), nil
}

// getCourse retrieves a course row
func (r *catalogRepository) getCourse(ctx context.Context, courseID int) (*models.Course, error) {
	query := `
		SELECT id, title, pass_threshold, sequential_progression, certificate_enabled
		FROM courses
		WHERE id = ?
		LIMIT 1
	`

	var course models.Course
	var passThreshold sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, courseID).Scan(
		&course.ID,
		&course.Title,
		&passThreshold,
		&course.SequentialProgression,
		&course.CertificateEnabled,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	if passThreshold.Valid {
		course.PassThreshold = int(passThreshold.Int64)
	} else {
		course.PassThreshold = models.DefaultPassThreshold
	}

	return &course, nil
}

// getModules retrieves the ordered modules of a course
func (r *catalogRepository) getModules(ctx context.Context, courseID int) ([]models.Module, error) {
	query := `
		SELECT id, course_id, title, module_order
		FROM course_modules
		WHERE course_id = ?
		ORDER BY module_order, id
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query modules: %w", err)
	}
	defer rows.Close()

	var modules []models.Module
	for rows.Next() {
		var m models.Module
		if err := rows.Scan(&m.ID, &m.CourseID, &m.Title, &m.ModuleOrder); err != nil {
			return nil, fmt.Errorf("failed to scan module: %w", err)
		}
		modules = append(modules, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return modules, nil
}

// getTopics retrieves the ordered topics of all modules in a course
func (r *catalogRepository) getTopics(ctx context.Context, courseID int) ([]models.Topic, error) {
	query := `
		SELECT t.id, t.module_id, t.title, t.topic_order
		FROM topics t
		JOIN course_modules m ON t.module_id = m.id
		WHERE m.course_id = ?
		ORDER BY t.topic_order, t.id
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query topics: %w", err)
	}
	defer rows.Close()

	var topics []models.Topic
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.ID, &t.ModuleID, &t.Title, &t.TopicOrder); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return topics, nil
}

// getQuestions retrieves the ordered quiz questions of all topics in a course.
// Answer options are stored as a JSON array column.
func (r *catalogRepository) getQuestions(ctx context.Context, courseID int) ([]models.QuizQuestion, error) {
	query := `
		SELECT q.id, q.topic_id, q.prompt, q.options, q.correct_option, q.weight, q.question_order
		FROM quiz_questions q
		JOIN topics t ON q.topic_id = t.id
		JOIN course_modules m ON t.module_id = m.id
		WHERE m.course_id = ?
		ORDER BY q.question_order, q.id
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quiz questions: %w", err)
	}
	defer rows.Close()

	var questions []models.QuizQuestion
	for rows.Next() {
		var q models.QuizQuestion
		var options []byte
		if err := rows.Scan(&q.ID, &q.TopicID, &q.Prompt, &options, &q.CorrectOption, &q.Weight, &q.QuestionOrder); err != nil {
			return nil, fmt.Errorf("failed to scan quiz question: %w", err)
		}
		if err := json.Unmarshal(options, &q.Options); err != nil {
			return nil, fmt.Errorf("failed to decode options for question %d: %w", q.ID, err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return questions, nil
}
