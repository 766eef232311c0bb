package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics набор метрик сервиса
type Metrics struct {
	Registry *prometheus.Registry

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrors      *prometheus.CounterVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge

	// Бизнес-метрики
	AvailabilityChecks *prometheus.CounterVec
	SlotRejections     *prometheus.CounterVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		Registry: prometheus.NewRegistry(),

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}),

		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),

		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}),

		AvailabilityChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_checks_total",
			Help:        "Availability verdicts by result",
			ConstLabels: constLabels,
		}, []string{"result"}),

		SlotRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_validation_rejections_total",
			Help:        "Booking submissions rejected by the slot gate, by rule",
			ConstLabels: constLabels,
		}, []string{"rule"}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.AvailabilityChecks,
		m.SlotRejections,
	)

	return m
}

// ObserveAvailability учитывает вердикт проверки доступности
func (m *Metrics) ObserveAvailability(available bool) {
	if m == nil {
		return
	}
	result := "available"
	if !available {
		result = "conflict"
	}
	m.AvailabilityChecks.WithLabelValues(result).Inc()
}

// ObserveSlotRejection учитывает отказ при финальной проверке слота
func (m *Metrics) ObserveSlotRejection(rule string) {
	if m == nil {
		return
	}
	m.SlotRejections.WithLabelValues(rule).Inc()
}
