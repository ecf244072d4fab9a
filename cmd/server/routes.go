package main

import (
	"codeberg.org/justcopy/server/api/rest/generate"
	"codeberg.org/justcopy/server/api/rest/health"
	"codeberg.org/justcopy/server/api/rest/templates"
	"codeberg.org/justcopy/server/internal/errors"
	"codeberg.org/justcopy/server/internal/metrics"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(gin.CustomRecovery(errors.Recovery))
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggerMiddleware())
	router.Use(metrics.Middleware())
	router.Use(errors.ExposeDetails(server.config.IsDevelopment()))
	router.Use(SecurityHeadersMiddleware())
	router.Use(CORSMiddleware(server.config))
	router.Use(BodyLimitMiddleware(server.config.MaxBodyBytes))
	router.Use(server.limiter.Middleware())

	router.GET("/health", health.Handler)
	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api")

	{
		generate.RegisterRoutes(api, server.copywriter)
		templates.RegisterRoutes(api)
	}

	router.NoRoute(errors.NotFound)
}
