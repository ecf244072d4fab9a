package ratelimit

import (
	"strconv"
	"strings"
	"time"

	"codeberg.org/justcopy/server/internal/errors"
	"codeberg.org/justcopy/server/internal/logger"
	"codeberg.org/justcopy/server/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// holds rate limiting configuration
type Config struct {
	// max requests per window per client IP
	Limit int64

	// time window for rate limiting
	Window time.Duration

	// only paths with this prefix are counted
	PathPrefix string
}

// limits requests per client IP with an in-memory store
type Limiter struct {
	config  Config
	handler gin.HandlerFunc
}

func New(config Config) *Limiter {
	instance := limiter.New(memory.NewStore(), limiter.Rate{
		Period: config.Window,
		Limit:  config.Limit,
	})

	return &Limiter{
		config: config,
		handler: mgin.NewMiddleware(instance,
			mgin.WithLimitReachedHandler(handleLimitReached),
			mgin.WithErrorHandler(handleStoreError),
		),
	}
}

// returns a Gin middleware that applies the limit to matching paths
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.applies(c.Request.URL.Path) {
			c.Next()
			return
		}

		l.handler(c)
	}
}

// "/api/" also covers the bare "/api"
func (l *Limiter) applies(path string) bool {
	return strings.HasPrefix(path, l.config.PathPrefix) ||
		path == strings.TrimSuffix(l.config.PathPrefix, "/")
}

func handleLimitReached(c *gin.Context) {
	logger.Warn("rate limit exceeded", "ip", c.ClientIP(), "path", c.Request.URL.Path)
	metrics.IncRateLimited()

	if reset, err := strconv.ParseInt(c.Writer.Header().Get("X-RateLimit-Reset"), 10, 64); err == nil {
		retryAfter := time.Until(time.Unix(reset, 0)).Round(time.Second)
		if retryAfter < time.Second {
			retryAfter = time.Second
		}
		c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
	}

	errors.TooManyRequests(c)
}

// the memory store does not fail in practice; treat a failure as a server error
func handleStoreError(c *gin.Context, err error) {
	metrics.IncError("ratelimit", "store")
	errors.InternalError(c, errors.MessageUnexpected, err)
}
