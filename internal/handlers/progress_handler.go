package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/skillvalley/training-service/internal/auth"
	"github.com/skillvalley/training-service/internal/models"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps methods for completion and progress operations
type ProgressService interface {
	// AttemptCompletion runs the completion gate for one topic and records a
	// pass in the progress ledger.
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	// "topicID" is the ID of the topic.
	// "req" carries either a full quiz attempt or an explicit viewed signal.
	//
	// Returns the completion result and an error if any.
	AttemptCompletion(ctx context.Context, userID, courseID, topicID int, req models.CompleteTopicRequest) (models.CompletionResult, error)
	// GetProgress derives a user's completion state for a course.
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	//
	// Returns the derived progress and an error if any.
	GetProgress(ctx context.Context, userID, courseID int) (*models.ProgressResponse, error)
}

// ProgressHandler handles HTTP requests for topic completion and course progress
type ProgressHandler struct {
	BaseHandler
	service ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(service ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all progress handler routes
func (h *ProgressHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/courses/{courseID}/topics/{topicID}/complete", h.AttemptCompletion)
		r.Get("/courses/{courseID}/progress", h.GetProgress)
	})
}

// AttemptCompletion handles POST /courses/{courseID}/topics/{topicID}/complete
// @Summary Attempt topic completion
// @Description Complete a topic with a final quiz attempt, or with an explicit viewed signal for topics without a quiz
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path int true "Course ID"
// @Param topicID path int true "Topic ID"
// @Param request body models.CompleteTopicRequest true "Quiz attempt or viewed signal"
// @Success 200 {object} models.CompletionResult "Completion outcome"
// @Failure 400 {object} map[string]string "Incomplete attempt or invalid selection"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Course or topic not found"
// @Failure 503 {object} map[string]string "Progress ledger unavailable"
// @Router /courses/{courseID}/topics/{topicID}/complete [post]
func (h *ProgressHandler) AttemptCompletion(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	courseID, err := strconv.Atoi(chi.URLParam(r, "courseID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	topicID, err := strconv.Atoi(chi.URLParam(r, "topicID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid topic ID")
		return
	}

	var req models.CompleteTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.AttemptCompletion(r.Context(), userID, courseID, topicID, req)
	if err != nil {
		h.Logger.Error("failed to attempt completion", zap.Error(err))
		h.RespondError(w, statusForError(err), err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, result)
}

// GetProgress handles GET /courses/{courseID}/progress
// @Summary Get course progress
// @Description Get the user's completed topics and derived module/course completion percentages
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path int true "Course ID"
// @Success 200 {object} models.ProgressResponse "Derived progress"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 503 {object} map[string]string "Progress ledger unavailable"
// @Router /courses/{courseID}/progress [get]
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	courseID, err := strconv.Atoi(chi.URLParam(r, "courseID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	progress, err := h.service.GetProgress(r.Context(), userID, courseID)
	if err != nil {
		h.Logger.Error("failed to get progress", zap.Error(err))
		h.RespondError(w, statusForError(err), err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, progress)
}
