package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Generation
	Generations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "justcopy_generations_total",
			Help: "Completed generations by selected template",
		},
		[]string{"template"},
	)
	GenerationDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "justcopy_generation_duration_seconds",
			Help:    "Time spent producing copy, including the simulated delay",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 1.5, 2, 3, 5},
		},
	)

	// HTTP
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "justcopy_http_requests_total",
			Help: "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "justcopy_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)

	// Errors
	Errors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "justcopy_errors_total",
			Help: "Errors encountered in components",
		},
		[]string{"component", "type"},
	)
)

func init() {
	prometheus.MustRegister(
		Generations,
		GenerationDurationSeconds,
		HTTPRequests,
		RateLimited,
		Errors,
	)
}

// serves the default registry in the prometheus exposition format
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// counts every request once it has been handled
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Generation
func IncGeneration(template string) {
	Generations.WithLabelValues(template).Inc()
}

func ObserveGenerationDuration(d time.Duration) {
	GenerationDurationSeconds.Observe(d.Seconds())
}

// HTTP
func IncRateLimited() {
	RateLimited.Inc()
}

// Errors
func IncError(component, typ string) {
	Errors.WithLabelValues(component, typ).Inc()
}
