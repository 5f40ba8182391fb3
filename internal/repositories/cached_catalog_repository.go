package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/skillvalley/training-service/internal/models"
	"go.uber.org/zap"
)

// ShapeCache is the subset of the cache client used for course shapes
type ShapeCache interface {
	// GetJSON reads a key into dest, reporting whether the key was present
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	// SetJSON stores a value under key with a TTL
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// courseShapeLoader is the loader being decorated
type courseShapeLoader interface {
	GetCourseShape(ctx context.Context, courseID int) (*models.CourseShape, error)
}

// cachedCatalogRepository decorates a catalog repository with a short-TTL
// shape cache. Course shapes are immutable per version, so serving a slightly
// stale shape is safe; cache failures fall through to the database.
type cachedCatalogRepository struct {
	inner  courseShapeLoader
	cache  ShapeCache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedCatalogRepository wraps a catalog repository with a shape cache
func NewCachedCatalogRepository(inner courseShapeLoader, cache ShapeCache, ttl time.Duration, logger *zap.Logger) *cachedCatalogRepository {
	return &cachedCatalogRepository{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// GetCourseShape serves the shape from cache when present, loading and
// caching it otherwise
func (r *cachedCatalogRepository) GetCourseShape(ctx context.Context, courseID int) (*models.CourseShape, error) {
	key := shapeCacheKey(courseID)

	var cached models.CourseShape
	found, err := r.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		r.logger.Warn("shape cache read failed", zap.Int("course_id", courseID), zap.Error(err))
	} else if found {
		return &cached, nil
	}

	shape, err := r.inner.GetCourseShape(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if err := r.cache.SetJSON(ctx, key, shape, r.ttl); err != nil {
		r.logger.Warn("shape cache write failed", zap.Int("course_id", courseID), zap.Error(err))
	}

	return shape, nil
}

// shapeCacheKey builds the cache key for a course shape
func shapeCacheKey(courseID int) string {
	return fmt.Sprintf("course_shape:%d", courseID)
}
