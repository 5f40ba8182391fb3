package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/skillvalley/training-service/internal/models"
	"go.uber.org/zap"
)

// CatalogService is the interface that wraps methods for course catalog reads
type CatalogService interface {
	// GetCourseShape retrieves a course's content tree with correct-answer
	// indices stripped.
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns the learner-facing course shape and an error if any.
	GetCourseShape(ctx context.Context, courseID int) (*models.CourseShapeResponse, error)
}

// CourseHandler handles HTTP requests for course shape reads
type CourseHandler struct {
	BaseHandler
	service CatalogService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(service CatalogService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all course handler routes
func (h *CourseHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/courses/{courseID}", h.GetCourseShape)
	})
}

// GetCourseShape handles GET /courses/{courseID}
// @Summary Get course shape
// @Description Get the ordered module/topic/quiz tree of a course, without correct answers
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path int true "Course ID"
// @Success 200 {object} models.CourseShapeResponse "Course shape"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseID} [get]
func (h *CourseHandler) GetCourseShape(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "courseID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	shape, err := h.service.GetCourseShape(r.Context(), courseID)
	if err != nil {
		h.Logger.Error("failed to get course shape", zap.Error(err))
		h.RespondError(w, statusForError(err), err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, shape)
}
