package models

import "time"

// SystemMetrics represents system level statistics captured from instrumentation.
type SystemMetrics struct {
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	AggregationCount         uint64    `json:"aggregation_count"`
	AverageAggregationMs     float64   `json:"average_aggregation_ms"`
	DatasetRecords           int       `json:"dataset_records"`
	DuplicatesRemoved        int       `json:"duplicates_removed"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
