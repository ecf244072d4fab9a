package main

import (
	"fmt"

	"codeberg.org/justcopy/server/internal/config"
	"codeberg.org/justcopy/server/internal/copywriter"
	"codeberg.org/justcopy/server/internal/logger"
	"codeberg.org/justcopy/server/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

// only paths under this prefix count against the rate limit
const rateLimitedPrefix = "/api/"

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	router := gin.New()

	// nil trusts no proxy, so ClientIP is the socket address
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	limiter := ratelimit.New(ratelimit.Config{
		Limit:      cfg.RateLimit,
		Window:     cfg.RateLimitWindow,
		PathPrefix: rateLimitedPrefix,
	})

	logger.Info("rate limiting initialized",
		"limit", cfg.RateLimit,
		"window", cfg.RateLimitWindow.String(),
		"prefix", rateLimitedPrefix,
	)

	server := &Server{
		config:     cfg,
		copywriter: copywriter.New(cfg.GenerationDelay),
		limiter:    limiter,
		router:     router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
