package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-activity-api/internal/models"
	"github.com/noah-isme/teacher-activity-api/internal/service"
	appErrors "github.com/noah-isme/teacher-activity-api/pkg/errors"
	"github.com/noah-isme/teacher-activity-api/pkg/response"
)

type exportService interface {
	Render(filter models.ActivityFilter, format string) (*service.ExportFile, error)
}

type exportRequest struct {
	Format string `form:"format" binding:"omitempty,oneof=csv pdf"`
}

// ExportHandler serves filtered activity downloads.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs an export handler.
func NewExportHandler(svc exportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Export godoc
// @Summary Export filtered activities
// @Tags Activities
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "Export format (csv or pdf)" Enums(csv, pdf)
// @Param teacher_id query string false "Filter by teacher"
// @Param grade query string false "Filter by grade"
// @Param subject query string false "Filter by subject"
// @Param activity_type query string false "Filter by activity type"
// @Success 200 {file} file
// @Router /activities/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}

	var req exportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
		return
	}
	if req.Format == "" {
		req.Format = service.ExportFormatCSV
	}

	file, err := h.service.Render(parseActivityFilter(c), req.Format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
