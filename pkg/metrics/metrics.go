package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
// Все методы записи безопасны для nil-получателя (метрики выключены)
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal     *prometheus.CounterVec
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	AppointmentsCreated   *prometheus.CounterVec
	SchedulingConflicts   *prometheus.CounterVec
	AppointmentTransition *prometheus.CounterVec
	WaitingRoomAdmissions *prometheus.CounterVec
	WaitingQueueLength    *prometheus.GaugeVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		DBQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "status"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections to the database",
		}, []string{"service"}),
		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),
		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),
		AppointmentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clinic_appointments_created_total",
			Help: "Number of appointments created",
		}, []string{"service", "service_type"}),
		SchedulingConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clinic_scheduling_conflicts_total",
			Help: "Number of rejected bookings due to overlapping appointments",
		}, []string{"service"}),
		AppointmentTransition: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clinic_appointment_status_transitions_total",
			Help: "Number of appointment status transitions",
		}, []string{"service", "from", "to"}),
		WaitingRoomAdmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clinic_waiting_room_admissions_total",
			Help: "Number of patients admitted to the waiting room",
		}, []string{"service", "priority"}),
		WaitingQueueLength: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "clinic_waiting_queue_length",
			Help: "Number of entries in the current waiting room queue by status",
		}, []string{"service", "status"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueriesTotal,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.AppointmentsCreated,
		m.SchedulingConflicts,
		m.AppointmentTransition,
		m.WaitingRoomAdmissions,
		m.WaitingQueueLength,
	)

	return m
}

// ServiceName возвращает имя сервиса, используемое в лейблах
func (m *Metrics) ServiceName() string {
	if m == nil {
		return ""
	}
	return m.serviceName
}

func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.DBQueriesTotal.WithLabelValues(m.serviceName, operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет метрики connection pool
func (m *Metrics) SetDBPoolStats(open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.DBOpenConnections.WithLabelValues(m.serviceName).Set(float64(open))
	m.DBInUseConnections.WithLabelValues(m.serviceName).Set(float64(inUse))
	m.DBIdleConnections.WithLabelValues(m.serviceName).Set(float64(idle))
	m.DBWaitCount.WithLabelValues(m.serviceName).Set(float64(waitCount))
}

func (m *Metrics) RecordAppointmentCreated(serviceType string) {
	if m == nil {
		return
	}
	m.AppointmentsCreated.WithLabelValues(m.serviceName, serviceType).Inc()
}

func (m *Metrics) RecordSchedulingConflict() {
	if m == nil {
		return
	}
	m.SchedulingConflicts.WithLabelValues(m.serviceName).Inc()
}

func (m *Metrics) RecordAppointmentTransition(from, to string) {
	if m == nil {
		return
	}
	m.AppointmentTransition.WithLabelValues(m.serviceName, from, to).Inc()
}

func (m *Metrics) RecordWaitingRoomAdmission(priority string) {
	if m == nil {
		return
	}
	m.WaitingRoomAdmissions.WithLabelValues(m.serviceName, priority).Inc()
}

func (m *Metrics) SetWaitingQueueLength(status string, n int) {
	if m == nil {
		return
	}
	m.WaitingQueueLength.WithLabelValues(m.serviceName, status).Set(float64(n))
}
