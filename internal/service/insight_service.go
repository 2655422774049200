package service

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/teacher-activity-api/internal/models"
)

// Category markers prefixed to each insight message.
const (
	markerTopPerformer = "🏆"
	markerQuizzes      = "📝"
	markerLessons      = "📚"
	markerLowActivity  = "⚠️"
	markerActivityMix  = "📊"
)

// InsightService derives short natural-language observations from the
// per-teacher rollups of a filtered view.
type InsightService struct {
	metrics *MetricsService
	logger  *zap.Logger
}

// NewInsightService constructs an insight service.
func NewInsightService(metrics *MetricsService, logger *zap.Logger) *InsightService {
	return &InsightService{metrics: metrics, logger: logger}
}

// Generate applies the insight rules in fixed order and returns the ordered
// observation list. An empty rollup list yields an empty result.
func (s *InsightService) Generate(rollups []models.TeacherAggregate) []string {
	start := time.Now()
	insights := GenerateInsights(rollups)
	if s.metrics != nil {
		s.metrics.ObserveAggregation("insights", time.Since(start))
	}
	return insights
}

// GenerateInsights is the pure rule pipeline. Ties on "most" rules resolve to
// the first teacher in rollup order, which is deterministic because rollup
// order follows first occurrence in the filtered sequence.
func GenerateInsights(rollups []models.TeacherAggregate) []string {
	insights := []string{}
	if len(rollups) == 0 {
		return insights
	}

	top := rollups[0]
	mostQuizzes := rollups[0]
	mostLessons := rollups[0]
	totalActivities := 0
	totalQuizzes := 0
	for _, agg := range rollups {
		totalActivities += agg.Total
		totalQuizzes += agg.Quizzes
		if agg.Total > top.Total {
			top = agg
		}
		if agg.Quizzes > mostQuizzes.Quizzes {
			mostQuizzes = agg
		}
		if agg.Lessons > mostLessons.Lessons {
			mostLessons = agg
		}
	}

	if top.Total > 0 {
		insights = append(insights, fmt.Sprintf("%s Top performer: %s with %d total activities",
			markerTopPerformer, top.TeacherName, top.Total))
	}

	if mostQuizzes.Quizzes > 0 {
		insights = append(insights, fmt.Sprintf("%s %s created the most quizzes (%d)",
			markerQuizzes, mostQuizzes.TeacherName, mostQuizzes.Quizzes))
	}

	if mostLessons.Lessons > 0 {
		insights = append(insights, fmt.Sprintf("%s %s created the most lesson plans (%d)",
			markerLessons, mostLessons.TeacherName, mostLessons.Lessons))
	}

	for _, agg := range rollups {
		if agg.Total >= 1 && agg.Total <= 3 {
			word := "activities"
			if agg.Total == 1 {
				word = "activity"
			}
			insights = append(insights, fmt.Sprintf("%s Low activity: %s has only %d %s",
				markerLowActivity, agg.TeacherName, agg.Total, word))
			break
		}
	}

	denominator := totalActivities
	if denominator < 1 {
		denominator = 1
	}
	quizShare := float64(totalQuizzes) * 100 / float64(denominator)
	if quizShare > 50 {
		insights = append(insights, fmt.Sprintf("%s Quizzes make up %d%% of all activities",
			markerActivityMix, int(math.Round(quizShare))))
	}

	return insights
}
