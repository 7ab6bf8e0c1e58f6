package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Audit metrics
	AuditEntriesTotal *prometheus.CounterVec
	AuditErrorsTotal  prometheus.Counter

	// Document metrics
	DocumentWritesTotal *prometheus.CounterVec

	// Backup metrics
	BackupRunsTotal     *prometheus.CounterVec
	BackupLastSuccess   prometheus.Gauge
	BackupDuration      prometheus.Histogram
	BackupUploadsTotal  *prometheus.CounterVec
	CompaniesRegistered prometheus.Gauge
}

// New creates and registers all metrics on registry
func New(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accountapp_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "accountapp_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		AuditEntriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accountapp_audit_entries_total",
				Help: "Total number of audit entries written",
			},
			[]string{"action"},
		),
		AuditErrorsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "accountapp_audit_errors_total",
				Help: "Total number of audit entries that could not be written",
			},
		),
		DocumentWritesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accountapp_document_writes_total",
				Help: "Total number of document writes",
			},
			[]string{"document"},
		),
		BackupRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accountapp_backup_runs_total",
				Help: "Total number of company backups",
			},
			[]string{"status"},
		),
		BackupLastSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "accountapp_backup_last_success_timestamp_seconds",
				Help: "Unix time of the last backup run without failures",
			},
		),
		BackupDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "accountapp_backup_duration_seconds",
				Help:    "Duration of a full backup run",
				Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
			},
		),
		BackupUploadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accountapp_backup_uploads_total",
				Help: "Total number of backup artifacts uploaded",
			},
			[]string{"status"},
		),
		CompaniesRegistered: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "accountapp_companies",
				Help: "Number of registered companies seen by the last backup run",
			},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AuditEntriesTotal,
		m.AuditErrorsTotal,
		m.DocumentWritesTotal,
		m.BackupRunsTotal,
		m.BackupLastSuccess,
		m.BackupDuration,
		m.BackupUploadsTotal,
		m.CompaniesRegistered,
	)

	return m
}

// Handler serves the metrics gathered by registry
func Handler(registry prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
