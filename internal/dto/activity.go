package dto

import "github.com/noah-isme/teacher-activity-api/internal/models"

// HealthResponse reports the stored record count and removed duplicates.
type HealthResponse struct {
	Status            string `json:"status"`
	TotalRecords      int    `json:"total_records"`
	DuplicatesRemoved int    `json:"duplicates_removed"`
}

// ActivityListResponse carries a filtered record list and its count.
type ActivityListResponse struct {
	Activities []models.ActivityRecord `json:"activities"`
	Count      int                     `json:"count"`
}

// TeacherListResponse carries per-teacher rollups and their count.
type TeacherListResponse struct {
	Teachers []models.TeacherAggregate `json:"teachers"`
	Count    int                       `json:"count"`
}

// SummaryResponse combines overall counts, the chronological trend and the
// grade breakdown for a filtered view.
type SummaryResponse struct {
	Summary        models.ActivitySummary `json:"summary"`
	Trend          []models.TrendPoint    `json:"trend"`
	GradeBreakdown map[string]int         `json:"grade_breakdown"`
}

// InsightsResponse carries the ordered insight list for a filtered view.
type InsightsResponse struct {
	Insights []string `json:"insights"`
	Count    int      `json:"count"`
}
