package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/teacher-activity-api/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation and provides lightweight snapshots for API consumption.
type MetricsService struct {
	registry            *prometheus.Registry
	handler             http.Handler
	requestDuration     *prometheus.HistogramVec
	requestTotal        *prometheus.CounterVec
	aggregationDuration *prometheus.HistogramVec
	datasetRecords      prometheus.Gauge
	duplicatesRemoved   prometheus.Gauge

	requestCount             uint64
	requestDurationTotal     uint64
	aggregationCount         uint64
	aggregationDurationTotal uint64
	datasetSize              int64
	duplicateCount           int64
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	aggregationDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aggregation_duration_seconds",
		Help:    "Duration of in-memory aggregation passes",
		Buckets: prometheus.DefBuckets,
	}, []string{"view"})

	datasetRecords := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dataset_records",
		Help: "Number of deduplicated activity records held in memory",
	})

	duplicatesRemoved := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dataset_duplicates_removed",
		Help: "Number of duplicate records dropped at load time",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, aggregationDuration, datasetRecords, duplicatesRemoved, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:            registry,
		handler:             handler,
		requestDuration:     requestDuration,
		requestTotal:        requestTotal,
		aggregationDuration: aggregationDuration,
		datasetRecords:      datasetRecords,
		duplicatesRemoved:   duplicatesRemoved,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics and aggregates simple stats for snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// ObserveAggregation records the timing of one aggregation pass.
func (m *MetricsService) ObserveAggregation(view string, duration time.Duration) {
	if m == nil {
		return
	}
	m.aggregationDuration.WithLabelValues(view).Observe(duration.Seconds())
	atomic.AddUint64(&m.aggregationCount, 1)
	atomic.AddUint64(&m.aggregationDurationTotal, uint64(duration.Nanoseconds()))
}

// SetDatasetStats publishes the load-time record and duplicate counts.
func (m *MetricsService) SetDatasetStats(records, removed int) {
	if m == nil {
		return
	}
	m.datasetRecords.Set(float64(records))
	m.duplicatesRemoved.Set(float64(removed))
	atomic.StoreInt64(&m.datasetSize, int64(records))
	atomic.StoreInt64(&m.duplicateCount, int64(removed))
}

// Snapshot returns aggregated metrics suitable for the system endpoint.
func (m *MetricsService) Snapshot() models.SystemMetrics {
	if m == nil {
		return models.SystemMetrics{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)
	aggregations := atomic.LoadUint64(&m.aggregationCount)
	aggDuration := atomic.LoadUint64(&m.aggregationDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	var avgAggregationMs float64
	if aggregations > 0 {
		avgAggregationMs = float64(aggDuration) / float64(aggregations) / float64(time.Millisecond)
	}

	return models.SystemMetrics{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		AggregationCount:         aggregations,
		AverageAggregationMs:     avgAggregationMs,
		DatasetRecords:           int(atomic.LoadInt64(&m.datasetSize)),
		DuplicatesRemoved:        int(atomic.LoadInt64(&m.duplicateCount)),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
