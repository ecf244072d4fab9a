package main

import (
	"codeberg.org/justcopy/server/internal/config"
	"codeberg.org/justcopy/server/internal/copywriter"
	"codeberg.org/justcopy/server/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config     *config.Config
	copywriter *copywriter.Copywriter
	limiter    *ratelimit.Limiter
	router     *gin.Engine
}
