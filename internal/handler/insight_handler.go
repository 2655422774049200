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

type rollupSource interface {
	Rollups(filter models.ActivityFilter) []models.TeacherAggregate
}

type insightGenerator interface {
	Generate(rollups []models.TeacherAggregate) []string
}

// InsightHandler exposes natural-language insight generation.
type InsightHandler struct {
	rollups  rollupSource
	insights insightGenerator
}

// NewInsightHandler constructs an insight handler.
func NewInsightHandler(rollups rollupSource, insights insightGenerator) *InsightHandler {
	return &InsightHandler{rollups: rollups, insights: insights}
}

// Insights godoc
// @Summary Natural-language insights for the filtered view
// @Tags Insights
// @Produce json
// @Param teacher_id query string false "Filter by teacher"
// @Param grade query string false "Filter by grade"
// @Param subject query string false "Filter by subject"
// @Param activity_type query string false "Filter by activity type"
// @Success 200 {object} response.Envelope
// @Router /insights [get]
func (h *InsightHandler) Insights(c *gin.Context) {
	if h.rollups == nil || h.insights == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	insights := h.insights.Generate(h.rollups.Rollups(parseActivityFilter(c)))
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = make(map[string]interface{})
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, dto.InsightsResponse{
		Insights: insights,
		Count:    len(insights),
	}, meta)
}
