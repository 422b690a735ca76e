package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors of one server instance. Collectors are
// registered on their own registry so tests can build several instances.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	AuthAttemptsTotal   *prometheus.CounterVec
	LectureMutations    *prometheus.CounterVec
	MaterialsUploaded   prometheus.Counter
	CacheLookups        *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests completed",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		AuthAttemptsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Registration and login attempts by outcome",
		}, []string{"action", "outcome"}),
		LectureMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lecture_mutations_total",
			Help: "Lecture create/update/delete operations by outcome",
		}, []string{"operation", "outcome"}),
		MaterialsUploaded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lecture_materials_uploaded_total",
			Help: "Material blobs committed with a lecture",
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lecture_cache_lookups_total",
			Help: "Lecture detail cache lookups by result",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AuthAttemptsTotal,
		m.LectureMutations,
		m.MaterialsUploaded,
		m.CacheLookups,
	)
	return m
}

// Middleware records request count and latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
