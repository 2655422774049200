package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/teacher-activity-api/internal/models"
	"github.com/noah-isme/teacher-activity-api/internal/repository"
)

// FilterActivities returns the subsequence of records matching every present
// predicate. The input is never mutated and surviving order is preserved.
func FilterActivities(records []models.ActivityRecord, filter models.ActivityFilter) []models.ActivityRecord {
	filtered := make([]models.ActivityRecord, 0, len(records))
	for _, record := range records {
		if filter.Matches(record) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// ActivityService answers activity listing queries against the shared store.
type ActivityService struct {
	store   *repository.ActivityStore
	metrics *MetricsService
	logger  *zap.Logger
}

// NewActivityService constructs an activity service.
func NewActivityService(store *repository.ActivityStore, metrics *MetricsService, logger *zap.Logger) *ActivityService {
	return &ActivityService{store: store, metrics: metrics, logger: logger}
}

// List returns the filtered record list.
func (s *ActivityService) List(filter models.ActivityFilter) []models.ActivityRecord {
	start := time.Now()
	filtered := FilterActivities(s.store.All(), filter)
	if s.metrics != nil {
		s.metrics.ObserveAggregation("activities", time.Since(start))
	}
	return filtered
}

// Stats reports the stored record count and the duplicates dropped at load.
func (s *ActivityService) Stats() (total, removed int) {
	return s.store.Len(), s.store.DuplicatesRemoved()
}
