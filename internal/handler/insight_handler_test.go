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

type rollupSourceMock struct {
	rollups    []models.TeacherAggregate
	lastFilter models.ActivityFilter
}

func (m *rollupSourceMock) Rollups(filter models.ActivityFilter) []models.TeacherAggregate {
	m.lastFilter = filter
	return m.rollups
}

type insightGeneratorMock struct {
	insights []string
	received []models.TeacherAggregate
}

func (m *insightGeneratorMock) Generate(rollups []models.TeacherAggregate) []string {
	m.received = rollups
	return m.insights
}

func TestInsightHandlerInsights(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rollups := &rollupSourceMock{rollups: []models.TeacherAggregate{{TeacherID: "T1", Total: 5}}}
	generator := &insightGeneratorMock{insights: []string{"🏆 Top performer: Asih with 5 total activities"}}
	handler := NewInsightHandler(rollups, generator)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/insights?grade=8", nil)
	c.Request = req

	handler.Insights(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "8", rollups.lastFilter.Grade)
	require.Len(t, generator.received, 1)

	var envelope struct {
		Data dto.InsightsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.Data.Count)
}

func TestInsightHandlerEmptyView(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewInsightHandler(&rollupSourceMock{}, &insightGeneratorMock{insights: []string{}})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/insights?teacher_id=missing", nil)
	c.Request = req

	handler.Insights(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data dto.InsightsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, 0, envelope.Data.Count)
	assert.Empty(t, envelope.Data.Insights)
}
