package templates

import (
	"net/http"

	"codeberg.org/justcopy/server/internal/copywriter"
	"github.com/gin-gonic/gin"
)

// ListHandler godoc
// @Summary List content templates
// @Description Returns the fixed set of content templates
// @Tags templates
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /api/templates [get]
func ListHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ListResponse{Templates: copywriter.Catalog()})
}
