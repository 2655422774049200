package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/teacher-activity-api/internal/models"
	"github.com/noah-isme/teacher-activity-api/internal/service"
)

type exportServiceMock struct {
	file       *service.ExportFile
	err        error
	lastFormat string
	lastFilter models.ActivityFilter
}

func (m *exportServiceMock) Render(filter models.ActivityFilter, format string) (*service.ExportFile, error) {
	m.lastFilter = filter
	m.lastFormat = format
	return m.file, m.err
}

func TestExportHandlerCSVDownload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &exportServiceMock{
		file: &service.ExportFile{
			Filename:    "activities-20260201-120000.csv",
			ContentType: "text/csv",
			Content:     []byte("Teacher ID,Teacher\n"),
		},
	}
	handler := NewExportHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/activities/export?format=csv&subject=Math", nil)
	c.Request = req

	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "csv", mockSvc.lastFormat)
	assert.Equal(t, "Math", mockSvc.lastFilter.Subject)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "activities-20260201-120000.csv")
}

func TestExportHandlerDefaultsToCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &exportServiceMock{
		file: &service.ExportFile{Filename: "a.csv", ContentType: "text/csv"},
	}
	handler := NewExportHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/activities/export", nil)
	c.Request = req

	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.ExportFormatCSV, mockSvc.lastFormat)
}

func TestExportHandlerRejectsUnknownFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &exportServiceMock{}
	handler := NewExportHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/activities/export?format=xlsx", nil)
	c.Request = req

	handler.Export(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mockSvc.lastFormat)
}
