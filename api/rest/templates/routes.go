package templates

import "github.com/gin-gonic/gin"

// registers template listing routes
func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/templates", ListHandler)
}
