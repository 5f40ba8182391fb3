package services

import (
	"context"

	"github.com/skillvalley/training-service/internal/models"
)

// catalogService exposes the learner-facing course shape
type catalogService struct {
	catalogRepo CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo CatalogRepository) *catalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
	}
}

// GetCourseShape retrieves a course's content tree with correct-answer
// indices stripped
func (s *catalogService) GetCourseShape(ctx context.Context, courseID int) (*models.CourseShapeResponse, error) {
	shape, err := resolveShape(ctx, s.catalogRepo, courseID)
	if err != nil {
		return nil, err
	}

	return shape.ShapeResponse(), nil
}
