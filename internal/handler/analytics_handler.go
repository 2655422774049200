package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-activity-api/internal/dto"
	"github.com/noah-isme/teacher-activity-api/internal/middleware"
	"github.com/noah-isme/teacher-activity-api/internal/models"
	appErrors "github.com/noah-isme/teacher-activity-api/pkg/errors"
	"github.com/noah-isme/teacher-activity-api/pkg/response"
)

type analyticsService interface {
	Rollups(filter models.ActivityFilter) []models.TeacherAggregate
	Summary(filter models.ActivityFilter) (models.ActivitySummary, []models.TrendPoint, map[string]int)
	Options() models.FilterOptions
}

type systemMetrics interface {
	Snapshot() models.SystemMetrics
}

// AnalyticsHandler exposes rollup, summary and filter-option endpoints.
type AnalyticsHandler struct {
	analytics analyticsService
	metrics   systemMetrics
}

// NewAnalyticsHandler constructs the analytics handler.
func NewAnalyticsHandler(analytics analyticsService, metrics systemMetrics) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, metrics: metrics}
}

// Teachers godoc
// @Summary Per-teacher activity rollups
// @Tags Analytics
// @Produce json
// @Param teacher_id query string false "Filter by teacher"
// @Param grade query string false "Filter by grade"
// @Param subject query string false "Filter by subject"
// @Param activity_type query string false "Filter by activity type"
// @Success 200 {object} response.Envelope
// @Router /teachers [get]
func (h *AnalyticsHandler) Teachers(c *gin.Context) {
	if h.analytics == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	rollups := h.analytics.Rollups(parseActivityFilter(c))
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = make(map[string]interface{})
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, dto.TeacherListResponse{
		Teachers: rollups,
		Count:    len(rollups),
	}, meta)
}

// Summary godoc
// @Summary Activity summary, trend and grade breakdown
// @Tags Analytics
// @Produce json
// @Param teacher_id query string false "Filter by teacher"
// @Param grade query string false "Filter by grade"
// @Param subject query string false "Filter by subject"
// @Param activity_type query string false "Filter by activity type"
// @Success 200 {object} response.Envelope
// @Router /summary [get]
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	if h.analytics == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	summary, trend, breakdown := h.analytics.Summary(parseActivityFilter(c))
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = make(map[string]interface{})
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, dto.SummaryResponse{
		Summary:        summary,
		Trend:          trend,
		GradeBreakdown: breakdown,
	}, meta)
}

// Filters godoc
// @Summary Distinct filter options
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /filters [get]
func (h *AnalyticsHandler) Filters(c *gin.Context) {
	if h.analytics == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	response.JSON(c, http.StatusOK, h.analytics.Options())
}

// System godoc
// @Summary Instrumentation snapshot
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /system [get]
func (h *AnalyticsHandler) System(c *gin.Context) {
	if h.metrics == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	response.JSON(c, http.StatusOK, h.metrics.Snapshot())
}
