package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-activity-api/internal/dto"
	"github.com/noah-isme/teacher-activity-api/internal/models"
	appErrors "github.com/noah-isme/teacher-activity-api/pkg/errors"
	"github.com/noah-isme/teacher-activity-api/pkg/response"
)

type activityService interface {
	List(filter models.ActivityFilter) []models.ActivityRecord
}

// ActivityHandler exposes the filtered activity listing.
type ActivityHandler struct {
	service activityService
}

// NewActivityHandler constructs an activity handler.
func NewActivityHandler(svc activityService) *ActivityHandler {
	return &ActivityHandler{service: svc}
}

// List godoc
// @Summary List activities
// @Tags Activities
// @Produce json
// @Param teacher_id query string false "Filter by teacher"
// @Param grade query string false "Filter by grade"
// @Param subject query string false "Filter by subject"
// @Param activity_type query string false "Filter by activity type"
// @Success 200 {object} response.Envelope
// @Router /activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	activities := h.service.List(parseActivityFilter(c))
	response.JSON(c, http.StatusOK, dto.ActivityListResponse{
		Activities: activities,
		Count:      len(activities),
	})
}
