package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/skillvalley/training-service/internal/models"
	"go.uber.org/zap"
)

// QuizService is the interface that wraps methods for quiz grading operations
type QuizService interface {
	// GradeAnswer grades a single selected option against a quiz question.
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	// "topicID" is the ID of the topic owning the question.
	// "questionID" is the ID of the quiz question.
	// "selectedOption" is the option index the user selected.
	//
	// Returns the grading result and an error if any.
	GradeAnswer(ctx context.Context, courseID, topicID, questionID, selectedOption int) (models.GradeResult, error)
	// ScoreAttempt scores a quiz attempt for a topic.
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	// "topicID" is the ID of the topic.
	// "answers" maps question IDs to selected option indices.
	//
	// Returns the attempt score and an error if any.
	ScoreAttempt(ctx context.Context, courseID, topicID int, answers map[int]int) (models.AttemptScore, error)
}

// QuizHandler handles HTTP requests for quiz grading and scoring
type QuizHandler struct {
	BaseHandler
	service QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(service QuizService, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all quiz handler routes
func (h *QuizHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/courses/{courseID}/topics/{topicID}/grade", h.GradeAnswer)
		r.Post("/courses/{courseID}/topics/{topicID}/score", h.ScoreAttempt)
	})
}

// GradeAnswer handles POST /courses/{courseID}/topics/{topicID}/grade
// @Summary Grade a single quiz answer
// @Description Grade one selected option against a quiz question of a topic
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path int true "Course ID"
// @Param topicID path int true "Topic ID"
// @Param request body models.GradeAnswerRequest true "Answer to grade"
// @Success 200 {object} models.GradeResult "Grading result"
// @Failure 400 {object} map[string]string "Invalid selection"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Course, topic, or question not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseID}/topics/{topicID}/grade [post]
func (h *QuizHandler) GradeAnswer(w http.ResponseWriter, r *http.Request) {
	courseID, topicID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req models.GradeAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.GradeAnswer(r.Context(), courseID, topicID, req.QuestionID, req.SelectedOption)
	if err != nil {
		h.Logger.Error("failed to grade answer", zap.Error(err))
		h.RespondError(w, statusForError(err), err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, result)
}

// ScoreAttempt handles POST /courses/{courseID}/topics/{topicID}/score
// @Summary Score a quiz attempt
// @Description Score a set of answers for a topic's quiz; partial attempts are scored for display but are not final
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path int true "Course ID"
// @Param topicID path int true "Topic ID"
// @Param request body models.ScoreAttemptRequest true "Attempt answers"
// @Success 200 {object} models.AttemptScore "Attempt score"
// @Failure 400 {object} map[string]string "Invalid selection"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Course or topic not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseID}/topics/{topicID}/score [post]
func (h *QuizHandler) ScoreAttempt(w http.ResponseWriter, r *http.Request) {
	courseID, topicID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req models.ScoreAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	score, err := h.service.ScoreAttempt(r.Context(), courseID, topicID, req.Answers)
	if err != nil {
		h.Logger.Error("failed to score attempt", zap.Error(err))
		h.RespondError(w, statusForError(err), err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, score)
}

// pathIDs parses course and topic IDs from the URL
func (h *QuizHandler) pathIDs(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "courseID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return 0, 0, false
	}

	topicID, err := strconv.Atoi(chi.URLParam(r, "topicID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid topic ID")
		return 0, 0, false
	}

	return courseID, topicID, true
}
