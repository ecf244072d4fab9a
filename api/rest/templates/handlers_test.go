package templates

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router.Group("/api"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/templates", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Templates, 5)

	for i, tpl := range resp.Templates {
		assert.Equal(t, i+1, tpl.ID)
		assert.NotEmpty(t, tpl.Name)
		assert.NotEmpty(t, tpl.Description)
		assert.NotEmpty(t, tpl.Category)
	}

	assert.Equal(t, "Ad Copy", resp.Templates[4].Name)
}
