package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-activity-api/internal/dto"
	"github.com/noah-isme/teacher-activity-api/pkg/response"
)

type datasetStats interface {
	Stats() (total, removed int)
}

// HealthHandler reports dataset health and readiness.
type HealthHandler struct {
	stats datasetStats
}

// NewHealthHandler constructs the health handler.
func NewHealthHandler(stats datasetStats) *HealthHandler {
	return &HealthHandler{stats: stats}
}

// Health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	total, removed := 0, 0
	if h.stats != nil {
		total, removed = h.stats.Stats()
	}
	response.JSON(c, http.StatusOK, dto.HealthResponse{
		Status:            "ok",
		TotalRecords:      total,
		DuplicatesRemoved: removed,
	})
}

// Ready godoc
// @Summary Readiness check
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
