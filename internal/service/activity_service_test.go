package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/teacher-activity-api/internal/models"
	"github.com/noah-isme/teacher-activity-api/internal/repository"
)

func sampleRecords() []models.ActivityRecord {
	return []models.ActivityRecord{
		{TeacherID: "T1", TeacherName: "Asih", Grade: 8, Subject: "Math", ActivityType: models.ActivityQuiz, CreatedAt: "2026-01-01 10:00:00"},
		{TeacherID: "T2", TeacherName: "Budi", Grade: 9, Subject: "Science", ActivityType: models.ActivityLessonPlan, CreatedAt: "2026-01-02 09:00:00"},
		{TeacherID: "T1", TeacherName: "Asih", Grade: 8, Subject: "Math", ActivityType: models.ActivityLessonPlan, CreatedAt: "2026-01-02 11:00:00"},
		{TeacherID: "T3", TeacherName: "Citra", Grade: 8, Subject: "Math", ActivityType: models.ActivityQuestionPaper, CreatedAt: "2026-01-03 08:00:00"},
	}
}

func TestFilterActivitiesConjunction(t *testing.T) {
	records := sampleRecords()

	sequential := FilterActivities(FilterActivities(records, models.ActivityFilter{Subject: "Math"}), models.ActivityFilter{Grade: "8"})
	combined := FilterActivities(records, models.ActivityFilter{Subject: "Math", Grade: "8"})

	assert.Equal(t, combined, sequential)
	require.Len(t, combined, 3)
}

func TestFilterActivitiesPreservesOrderAndInput(t *testing.T) {
	records := sampleRecords()
	filtered := FilterActivities(records, models.ActivityFilter{Grade: "8"})

	require.Len(t, filtered, 3)
	assert.Equal(t, "T1", filtered[0].TeacherID)
	assert.Equal(t, "T1", filtered[1].TeacherID)
	assert.Equal(t, "T3", filtered[2].TeacherID)

	// input untouched
	assert.Equal(t, sampleRecords(), records)
}

func TestFilterActivitiesEmptyFilterReturnsAll(t *testing.T) {
	records := sampleRecords()
	assert.Equal(t, records, FilterActivities(records, models.ActivityFilter{}))
}

func TestFilterActivitiesMalformedGrade(t *testing.T) {
	filtered := FilterActivities(sampleRecords(), models.ActivityFilter{Grade: "abc"})
	assert.Empty(t, filtered)
}

func TestActivityServiceListAndStats(t *testing.T) {
	raw := append(sampleRecords(), sampleRecords()[0])
	store := repository.NewActivityStore(raw)
	svc := NewActivityService(store, NewMetricsService(), zap.NewNop())

	listed := svc.List(models.ActivityFilter{TeacherID: "T1"})
	require.Len(t, listed, 2)

	total, removed := svc.Stats()
	assert.Equal(t, 4, total)
	assert.Equal(t, 1, removed)
}
