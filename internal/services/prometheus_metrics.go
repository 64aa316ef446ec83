package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	rowsLoaded     *prometheus.CounterVec
	loadFailures   *prometheus.CounterVec
	batchesWritten *prometheus.CounterVec
	loadDuration   *prometheus.HistogramVec
	datasetRows    *prometheus.GaugeVec
	reportsWritten *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		rowsLoaded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loader_rows_loaded_total",
				Help: "Total number of CSV rows inserted into the database",
			},
			[]string{"entity"},
		),
		loadFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loader_failures_total",
				Help: "Total number of failed load attempts",
			},
			[]string{"entity", "stage"},
		),
		batchesWritten: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loader_batches_written_total",
				Help: "Total number of insert batches sent to the database",
			},
			[]string{"entity"},
		),
		loadDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "loader_duration_milliseconds",
				Help:    "CSV load duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
			[]string{"entity"},
		),
		datasetRows: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dataset_rows",
				Help: "Current number of rows per table after the last load",
			},
			[]string{"entity"},
		),
		reportsWritten: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_written_total",
				Help: "Total number of reports rendered",
			},
			[]string{"report"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	entity := tags["entity"]

	switch name {
	case "loader.batch.written":
		m.batchesWritten.WithLabelValues(entity).Inc()
	case "loader.failed":
		m.loadFailures.WithLabelValues(entity, tags["stage"]).Inc()
	case "report.written":
		if report := tags["report"]; report != "" {
			m.reportsWritten.WithLabelValues(report).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "loader.users":
		m.loadDuration.WithLabelValues("users").Observe(float64(duration.Milliseconds()))
	case "loader.transactions":
		m.loadDuration.WithLabelValues("transactions").Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	entity := tags["entity"]

	switch name {
	case "loader.rows.loaded":
		m.rowsLoaded.WithLabelValues(entity).Add(value)
	case "dataset.rows":
		if entity != "" {
			m.datasetRows.WithLabelValues(entity).Set(value)
		}
	}
}
