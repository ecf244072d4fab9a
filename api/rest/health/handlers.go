package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler godoc
// @Summary Health check
// @Description Reports that the API process is up
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:  "OK",
		Message: "JustCopy.ai API is running!",
	})
}
