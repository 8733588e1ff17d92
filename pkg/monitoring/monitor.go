package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	SessionsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "test_sessions_started_total",
			Help: "Total number of test sessions started",
		},
	)

	SessionsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "test_sessions_completed_total",
			Help: "Total number of test sessions completed",
		},
	)

	AnswersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "test_answers_total",
			Help: "Total number of answers submitted, by proficiency",
		},
		[]string{"proficiency"},
	)

	ProgressWritesDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "progress_writes_dropped_total",
			Help: "Progress writes dropped after exhausting outbox retries",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(SessionsStarted)
	prometheus.MustRegister(SessionsCompleted)
	prometheus.MustRegister(AnswersTotal)
	prometheus.MustRegister(ProgressWritesDropped)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
