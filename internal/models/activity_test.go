package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivityFilterMatches(t *testing.T) {
	record := ActivityRecord{
		TeacherID:    "T1",
		TeacherName:  "Asih",
		Grade:        8,
		Subject:      "Math",
		ActivityType: ActivityQuiz,
		CreatedAt:    "2026-01-01 10:00:00",
	}

	tests := []struct {
		name   string
		filter ActivityFilter
		want   bool
	}{
		{"empty filter matches", ActivityFilter{}, true},
		{"teacher match", ActivityFilter{TeacherID: "T1"}, true},
		{"teacher mismatch", ActivityFilter{TeacherID: "T2"}, false},
		{"grade textual match", ActivityFilter{Grade: "8"}, true},
		{"grade mismatch", ActivityFilter{Grade: "9"}, false},
		{"malformed grade matches nothing", ActivityFilter{Grade: "eight"}, false},
		{"subject case-sensitive", ActivityFilter{Subject: "math"}, false},
		{"conjunction", ActivityFilter{TeacherID: "T1", Grade: "8", Subject: "Math", ActivityType: ActivityQuiz}, true},
		{"conjunction one miss", ActivityFilter{TeacherID: "T1", ActivityType: ActivityLessonPlan}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(record))
		})
	}
}

func TestActivityRecordDate(t *testing.T) {
	assert.Equal(t, "2026-01-01", ActivityRecord{CreatedAt: "2026-01-01 10:00:00"}.Date())
	assert.Equal(t, "2026-01-01", ActivityRecord{CreatedAt: "2026-01-01"}.Date())
	assert.Equal(t, "short", ActivityRecord{CreatedAt: "short"}.Date())
	assert.Equal(t, "", ActivityRecord{}.Date())
}

func TestActivityRecordKeyIgnoresName(t *testing.T) {
	a := ActivityRecord{TeacherID: "T1", TeacherName: "Asih", Grade: 8, Subject: "Math", ActivityType: ActivityQuiz, CreatedAt: "2026-01-01 10:00:00"}
	b := a
	b.TeacherName = "A. Rahmawati"
	assert.Equal(t, a.Key(), b.Key())
}
