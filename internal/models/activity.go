package models

import "strconv"

// Activity types recognized by category-specific counters. Records carrying
// other values are preserved and count toward totals only.
const (
	ActivityLessonPlan    = "Lesson Plan"
	ActivityQuiz          = "Quiz"
	ActivityQuestionPaper = "Question Paper"
)

// ActivityRecord is a single teacher activity entry from the source dataset.
// Records are immutable after load.
type ActivityRecord struct {
	TeacherID    string `json:"teacher_id"`
	TeacherName  string `json:"teacher_name"`
	Grade        int    `json:"grade"`
	Subject      string `json:"subject"`
	ActivityType string `json:"activity_type"`
	CreatedAt    string `json:"created_at"`
}

// ActivityKey is the composite identity used to detect duplicate records.
type ActivityKey struct {
	TeacherID    string
	ActivityType string
	CreatedAt    string
	Grade        int
	Subject      string
}

// Key derives the record's composite dedup key.
func (r ActivityRecord) Key() ActivityKey {
	return ActivityKey{
		TeacherID:    r.TeacherID,
		ActivityType: r.ActivityType,
		CreatedAt:    r.CreatedAt,
		Grade:        r.Grade,
		Subject:      r.Subject,
	}
}

// Date returns the YYYY-MM-DD bucket of the record's timestamp. Timestamps
// shorter than the date prefix are bucketed as-is.
func (r ActivityRecord) Date() string {
	if len(r.CreatedAt) < 10 {
		return r.CreatedAt
	}
	return r.CreatedAt[:10]
}

// ActivityFilter scopes activity queries. Empty fields impose no constraint;
// present fields must match exactly. Grade stays textual so that a value
// that does not parse simply matches nothing.
type ActivityFilter struct {
	TeacherID    string
	Grade        string
	Subject      string
	ActivityType string
}

// Matches reports whether the record satisfies every present predicate.
func (f ActivityFilter) Matches(r ActivityRecord) bool {
	if f.TeacherID != "" && r.TeacherID != f.TeacherID {
		return false
	}
	if f.Grade != "" && strconv.Itoa(r.Grade) != f.Grade {
		return false
	}
	if f.Subject != "" && r.Subject != f.Subject {
		return false
	}
	if f.ActivityType != "" && r.ActivityType != f.ActivityType {
		return false
	}
	return true
}

// TeacherAggregate is the per-teacher rollup for a filtered view. It is
// rebuilt for each request and never stored.
type TeacherAggregate struct {
	TeacherID      string   `json:"teacher_id"`
	TeacherName    string   `json:"teacher_name"`
	Lessons        int      `json:"lessons"`
	Quizzes        int      `json:"quizzes"`
	QuestionPapers int      `json:"question_papers"`
	Total          int      `json:"total"`
	Subjects       []string `json:"subjects"`
	Grades         []int    `json:"grades"`
}

// ActivitySummary holds overall counts for a filtered view.
type ActivitySummary struct {
	TotalActivities int `json:"total_activities"`
	ActiveTeachers  int `json:"active_teachers"`
	Lessons         int `json:"lessons"`
	Quizzes         int `json:"quizzes"`
	QuestionPapers  int `json:"question_papers"`
}

// TrendPoint carries per-date counts for the three known activity types.
// Every emitted date reports all three counters, zero or not.
type TrendPoint struct {
	Date           string `json:"date"`
	Lessons        int    `json:"lessons"`
	Quizzes        int    `json:"quizzes"`
	QuestionPapers int    `json:"question_papers"`
}

// TeacherOption is a distinct (id, name) pair for selection UIs.
type TeacherOption struct {
	TeacherID   string `json:"teacher_id"`
	TeacherName string `json:"teacher_name"`
}

// FilterOptions lists the distinct values available for each filter key,
// always computed over the full store.
type FilterOptions struct {
	Teachers      []TeacherOption `json:"teachers"`
	Grades        []int           `json:"grades"`
	Subjects      []string        `json:"subjects"`
	ActivityTypes []string        `json:"activity_types"`
}
