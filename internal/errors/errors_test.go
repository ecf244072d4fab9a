package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(expose bool) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	c.Set(ExposeDetailsKey, expose)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestBadRequest(t *testing.T) {
	c, w := newContext(false)

	BadRequest(c, MessagePromptRequired)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{"error": "Prompt is required"}, decode(t, w))
	assert.True(t, c.IsAborted())
}

func TestBadRequest_DefaultMessage(t *testing.T) {
	c, w := newContext(false)

	BadRequest(c, "")

	assert.Equal(t, MessageInvalidBody, decode(t, w)["error"])
}

func TestNotFound(t *testing.T) {
	c, w := newContext(false)

	NotFound(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{"error": "Route not found"}, decode(t, w))
}

func TestInternalError_HidesDetailsOutsideDevelopment(t *testing.T) {
	c, w := newContext(false)

	InternalError(c, MessageGenerationFailed, stderrors.New("template exploded"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, MessageGenerationFailed, body["error"])
	assert.NotContains(t, body, "message")
}

func TestInternalError_ExposesDetailsInDevelopment(t *testing.T) {
	c, w := newContext(true)

	InternalError(c, MessageGenerationFailed, stderrors.New("template exploded"))

	body := decode(t, w)
	assert.Equal(t, "template exploded", body["message"])
}

func TestRecovery_NonErrorValue(t *testing.T) {
	c, w := newContext(true)

	Recovery(c, "nil map write")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, MessageUnexpected, body["error"])
	assert.Equal(t, "nil map write", body["message"])
}

func TestPayloadTooLarge(t *testing.T) {
	c, w := newContext(false)

	PayloadTooLarge(c)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, MessageBodyTooLarge, decode(t, w)["error"])
}
