package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-activity-api/internal/models"
)

// parseActivityFilter reads the optional filter keys shared by every query
// endpoint. Values are matched verbatim; a grade that fails to parse later
// simply matches no records.
func parseActivityFilter(c *gin.Context) models.ActivityFilter {
	return models.ActivityFilter{
		TeacherID:    strings.TrimSpace(c.Query("teacher_id")),
		Grade:        strings.TrimSpace(c.Query("grade")),
		Subject:      strings.TrimSpace(c.Query("subject")),
		ActivityType: strings.TrimSpace(c.Query("activity_type")),
	}
}
