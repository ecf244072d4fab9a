package errors

import (
	"fmt"
	"net/http"

	"codeberg.org/justcopy/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc.
//     These functions handle both logging and the HTTP response
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the handler decide how to log and respond

// returns a middleware that records whether error details may reach clients
func ExposeDetails(expose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ExposeDetailsKey, expose)
		c.Next()
	}
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = MessageInvalidBody
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// returns a 413 payload too large error
func PayloadTooLarge(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: MessageBodyTooLarge})
}

// returns a 404 route not found error
func NotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: MessageRouteNotFound})
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Error: MessageTooManyRequests})
}

// logs err and returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = MessageUnexpected
	}

	// log full error server-side with context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", c.GetString(RequestIDKey),
	)

	response := ErrorResponse{Error: message}
	if err != nil && c.GetBool(ExposeDetailsKey) {
		response.Message = err.Error()
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, response)
}

// converts a recovered panic into the generic 500 envelope
func Recovery(c *gin.Context, recovered any) {
	err, ok := recovered.(error)
	if !ok {
		err = fmt.Errorf("%v", recovered)
	}

	InternalError(c, MessageUnexpected, err)
}
