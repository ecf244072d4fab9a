package generate

import "github.com/gin-gonic/gin"

// registers copy generation routes
func RegisterRoutes(router *gin.RouterGroup, writer Generator) {
	router.POST("/generate", Handler(writer))
}
