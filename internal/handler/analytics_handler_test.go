package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/teacher-activity-api/internal/dto"
	"github.com/noah-isme/teacher-activity-api/internal/models"
)

type analyticsServiceMock struct {
	rollups    []models.TeacherAggregate
	summary    models.ActivitySummary
	trend      []models.TrendPoint
	breakdown  map[string]int
	options    models.FilterOptions
	lastFilter models.ActivityFilter
}

func (m *analyticsServiceMock) Rollups(filter models.ActivityFilter) []models.TeacherAggregate {
	m.lastFilter = filter
	return m.rollups
}

func (m *analyticsServiceMock) Summary(filter models.ActivityFilter) (models.ActivitySummary, []models.TrendPoint, map[string]int) {
	m.lastFilter = filter
	return m.summary, m.trend, m.breakdown
}

func (m *analyticsServiceMock) Options() models.FilterOptions {
	return m.options
}

type metricsMock struct {
	snapshot models.SystemMetrics
}

func (m *metricsMock) Snapshot() models.SystemMetrics {
	return m.snapshot
}

func TestAnalyticsHandlerTeachers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &analyticsServiceMock{
		rollups: []models.TeacherAggregate{{TeacherID: "T1", TeacherName: "Asih", Total: 3}},
	}
	handler := NewAnalyticsHandler(mockSvc, &metricsMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/teachers?subject=Math", nil)
	c.Request = req

	handler.Teachers(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Math", mockSvc.lastFilter.Subject)

	var envelope struct {
		Data dto.TeacherListResponse `json:"data"`
		Meta map[string]interface{}  `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.Data.Count)
	assert.Contains(t, envelope.Meta, "processing_time_ms")
}

func TestAnalyticsHandlerSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &analyticsServiceMock{
		summary:   models.ActivitySummary{TotalActivities: 2, ActiveTeachers: 2, Quizzes: 1, Lessons: 1},
		trend:     []models.TrendPoint{{Date: "2026-01-01", Quizzes: 1}, {Date: "2026-01-02", Lessons: 1}},
		breakdown: map[string]int{"Grade 8": 1, "Grade 9": 1},
	}
	handler := NewAnalyticsHandler(mockSvc, &metricsMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/summary", nil)
	c.Request = req

	handler.Summary(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data dto.SummaryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, 2, envelope.Data.Summary.TotalActivities)
	require.Len(t, envelope.Data.Trend, 2)
	assert.Equal(t, "2026-01-01", envelope.Data.Trend[0].Date)
	assert.Equal(t, 2, len(envelope.Data.GradeBreakdown))
}

func TestAnalyticsHandlerFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &analyticsServiceMock{
		options: models.FilterOptions{
			Teachers: []models.TeacherOption{{TeacherID: "T1", TeacherName: "Asih"}},
			Grades:   []int{8},
			Subjects: []string{"Math"},
		},
	}
	handler := NewAnalyticsHandler(mockSvc, &metricsMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/filters", nil)
	c.Request = req

	handler.Filters(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data models.FilterOptions `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Teachers, 1)
	assert.Equal(t, "Asih", envelope.Data.Teachers[0].TeacherName)
}

func TestAnalyticsHandlerSystem(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAnalyticsHandler(&analyticsServiceMock{}, &metricsMock{
		snapshot: models.SystemMetrics{DatasetRecords: 42, DuplicatesRemoved: 3},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/system", nil)
	c.Request = req

	handler.System(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data models.SystemMetrics `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, 42, envelope.Data.DatasetRecords)
}

func TestAnalyticsHandlerNilService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAnalyticsHandler(nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/summary", nil)
	c.Request = req

	handler.Summary(c)
	require.Equal(t, http.StatusInternalServerError, w.Code)
}
