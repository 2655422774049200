package service

import (
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/teacher-activity-api/internal/models"
	"github.com/noah-isme/teacher-activity-api/internal/repository"
)

// AnalyticsService computes per-teacher rollups, summaries, trends and
// filter-option discovery over the shared store. All aggregation is rebuilt
// per request from the immutable record set.
type AnalyticsService struct {
	store   *repository.ActivityStore
	metrics *MetricsService
	logger  *zap.Logger
}

// NewAnalyticsService constructs an analytics service.
func NewAnalyticsService(store *repository.ActivityStore, metrics *MetricsService, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{store: store, metrics: metrics, logger: logger}
}

// Rollups groups the filtered view by teacher, in first-occurrence order.
func (s *AnalyticsService) Rollups(filter models.ActivityFilter) []models.TeacherAggregate {
	start := time.Now()
	rollups := RollupTeachers(FilterActivities(s.store.All(), filter))
	if s.metrics != nil {
		s.metrics.ObserveAggregation("teachers", time.Since(start))
	}
	return rollups
}

// Summary returns overall counts, the chronological trend and the grade
// breakdown for the filtered view.
func (s *AnalyticsService) Summary(filter models.ActivityFilter) (models.ActivitySummary, []models.TrendPoint, map[string]int) {
	start := time.Now()
	filtered := FilterActivities(s.store.All(), filter)
	summary := Summarize(filtered)
	trend := Trend(filtered)
	breakdown := GradeBreakdown(filtered)
	if s.metrics != nil {
		s.metrics.ObserveAggregation("summary", time.Since(start))
	}
	return summary, trend, breakdown
}

// Options lists distinct filter values over the full store, ignoring filters.
func (s *AnalyticsService) Options() models.FilterOptions {
	start := time.Now()
	options := FilterOptionsOf(s.store.All())
	if s.metrics != nil {
		s.metrics.ObserveAggregation("filters", time.Since(start))
	}
	return options
}

// RollupTeachers builds per-teacher aggregates from an already-filtered
// sequence. Group order follows first occurrence of each teacher_id; the
// display name is taken from the first record seen for that id.
func RollupTeachers(records []models.ActivityRecord) []models.TeacherAggregate {
	byID := make(map[string]*models.TeacherAggregate)
	subjects := make(map[string]map[string]struct{})
	grades := make(map[string]map[int]struct{})
	order := make([]string, 0)

	for _, record := range records {
		agg, ok := byID[record.TeacherID]
		if !ok {
			agg = &models.TeacherAggregate{
				TeacherID:   record.TeacherID,
				TeacherName: record.TeacherName,
			}
			byID[record.TeacherID] = agg
			subjects[record.TeacherID] = make(map[string]struct{})
			grades[record.TeacherID] = make(map[int]struct{})
			order = append(order, record.TeacherID)
		}

		switch record.ActivityType {
		case models.ActivityLessonPlan:
			agg.Lessons++
		case models.ActivityQuiz:
			agg.Quizzes++
		case models.ActivityQuestionPaper:
			agg.QuestionPapers++
		}
		agg.Total++
		subjects[record.TeacherID][record.Subject] = struct{}{}
		grades[record.TeacherID][record.Grade] = struct{}{}
	}

	rollups := make([]models.TeacherAggregate, 0, len(order))
	for _, id := range order {
		agg := byID[id]
		agg.Subjects = sortedStrings(subjects[id])
		agg.Grades = sortedInts(grades[id])
		rollups = append(rollups, *agg)
	}
	return rollups
}

// Summarize computes overall counts for a filtered sequence. Unrecognized
// activity types count toward the total only.
func Summarize(records []models.ActivityRecord) models.ActivitySummary {
	summary := models.ActivitySummary{TotalActivities: len(records)}
	teachers := make(map[string]struct{})
	for _, record := range records {
		teachers[record.TeacherID] = struct{}{}
		switch record.ActivityType {
		case models.ActivityLessonPlan:
			summary.Lessons++
		case models.ActivityQuiz:
			summary.Quizzes++
		case models.ActivityQuestionPaper:
			summary.QuestionPapers++
		}
	}
	summary.ActiveTeachers = len(teachers)
	return summary
}

// Trend buckets records by calendar date. Every represented date reports all
// three known counters. Output is sorted ascending by date string, which is
// chronological for the fixed YYYY-MM-DD format.
func Trend(records []models.ActivityRecord) []models.TrendPoint {
	byDate := make(map[string]*models.TrendPoint)
	for _, record := range records {
		date := record.Date()
		point, ok := byDate[date]
		if !ok {
			point = &models.TrendPoint{Date: date}
			byDate[date] = point
		}
		switch record.ActivityType {
		case models.ActivityLessonPlan:
			point.Lessons++
		case models.ActivityQuiz:
			point.Quizzes++
		case models.ActivityQuestionPaper:
			point.QuestionPapers++
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	trend := make([]models.TrendPoint, 0, len(dates))
	for _, date := range dates {
		trend = append(trend, *byDate[date])
	}
	return trend
}

// GradeBreakdown maps "Grade {g}" labels to record counts.
func GradeBreakdown(records []models.ActivityRecord) map[string]int {
	breakdown := make(map[string]int)
	for _, record := range records {
		breakdown["Grade "+strconv.Itoa(record.Grade)]++
	}
	return breakdown
}

// FilterOptionsOf collects the distinct filter values of a record sequence.
// Teacher pairs keep first-occurrence order; the rest are sorted.
func FilterOptionsOf(records []models.ActivityRecord) models.FilterOptions {
	teacherSeen := make(map[string]struct{})
	gradeSet := make(map[int]struct{})
	subjectSet := make(map[string]struct{})
	typeSet := make(map[string]struct{})

	options := models.FilterOptions{
		Teachers:      []models.TeacherOption{},
		Grades:        []int{},
		Subjects:      []string{},
		ActivityTypes: []string{},
	}

	for _, record := range records {
		if _, ok := teacherSeen[record.TeacherID]; !ok {
			teacherSeen[record.TeacherID] = struct{}{}
			options.Teachers = append(options.Teachers, models.TeacherOption{
				TeacherID:   record.TeacherID,
				TeacherName: record.TeacherName,
			})
		}
		gradeSet[record.Grade] = struct{}{}
		subjectSet[record.Subject] = struct{}{}
		typeSet[record.ActivityType] = struct{}{}
	}

	options.Grades = sortedInts(gradeSet)
	options.Subjects = sortedStrings(subjectSet)
	options.ActivityTypes = sortedStrings(typeSet)
	return options
}

func sortedStrings(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for value := range set {
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}

func sortedInts(set map[int]struct{}) []int {
	values := make([]int, 0, len(set))
	for value := range set {
		values = append(values, value)
	}
	sort.Ints(values)
	return values
}
