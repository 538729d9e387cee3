package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

var histogramBuckets = []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// Metrics records request and mutation counters for the dashboard API.
type Metrics struct {
	requestTotal   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	mutations      *prometheus.CounterVec
}

// NewMetrics registers the HTTP collectors and a gauge reporting live sessions.
func NewMetrics(reg prometheus.Registerer, sessions func() int) (*Metrics, error) {
	m := &Metrics{
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tasksphere",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Count of processed HTTP requests",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tasksphere",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   histogramBuckets,
		}, []string{"method", "route", "status"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tasksphere",
			Name:      "mutations_total",
			Help:      "Entity writes by entity and outcome",
		}, []string{"entity", "outcome"}),
	}
	activeSessions := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "tasksphere",
		Name:      "active_sessions",
		Help:      "Number of live sessions",
	}, func() float64 { return float64(sessions()) })

	for _, c := range []prometheus.Collector{m.requestTotal, m.requestLatency, m.mutations, activeSessions} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Handler observes every request once the route has run.
func (m *Metrics) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		route := c.Route().Path
		labels := prometheus.Labels{
			"method": c.Method(),
			"route":  route,
			"status": strconv.Itoa(status),
		}
		m.requestTotal.With(labels).Inc()
		m.requestLatency.With(labels).Observe(time.Since(start).Seconds())

		if entity, ok := mutatedEntity(c.Method(), route); ok {
			m.mutations.WithLabelValues(entity, outcome(status)).Inc()
		}
		return err
	}
}

// mutatedEntity names the entity collection a write request targets.
func mutatedEntity(method, route string) (string, bool) {
	switch method {
	case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch:
	default:
		return "", false
	}
	entity, _, _ := strings.Cut(strings.TrimPrefix(route, "/"), "/")
	switch entity {
	case "projects", "tasks", "team", "settings":
		return entity, true
	}
	return "", false
}

func outcome(status int) string {
	switch {
	case status >= fiber.StatusInternalServerError:
		return "error"
	case status >= fiber.StatusBadRequest:
		return "rejected"
	}
	return "ok"
}
