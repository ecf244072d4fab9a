package generate

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"codeberg.org/justcopy/server/internal/copywriter"
	"codeberg.org/justcopy/server/internal/errors"
	"codeberg.org/justcopy/server/internal/logger"
	"codeberg.org/justcopy/server/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	// ISO-8601 with millisecond precision, always UTC
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"

	// non-standard status recorded when the client hangs up mid-generation
	StatusClientClosedRequest = 499
)

type Generator interface {
	Generate(ctx context.Context, req copywriter.GenerateRequest) (*copywriter.GenerateResponse, error)
}

// Handler godoc
// @Summary Generate marketing copy
// @Description Selects a template by keyword and fills it with the prompt
// @Tags generate
// @Accept json
// @Produce json
// @Param request body Request true "Generation request"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/generate [post]
func Handler(writer Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBind(&req); err != nil {
			rejectBinding(c, err)
			return
		}

		ctx := c.Request.Context()
		start := time.Now()

		resp, err := writer.Generate(ctx, copywriter.GenerateRequest{
			Prompt:  req.Prompt,
			Options: req.options(),
		})

		if err != nil {
			// caller went away, nobody is left to read a response
			if ctx.Err() != nil {
				logger.Info("client disconnected before generation completed",
					"request_id", c.GetString(errors.RequestIDKey),
					"error", err,
				)
				c.AbortWithStatus(StatusClientClosedRequest)
				return
			}

			metrics.IncError("generate", "generation")
			errors.InternalError(c, errors.MessageGenerationFailed, err)
			return
		}

		metrics.IncGeneration(string(resp.Template))
		metrics.ObserveGenerationDuration(time.Since(start))

		logger.Debug("content generated",
			"request_id", c.GetString(errors.RequestIDKey),
			"template", resp.Template,
			"prompt_length", len(req.Prompt),
		)

		c.JSON(http.StatusOK, Response{
			Success: true,
			Content: resp.Content,
			Metadata: Metadata{
				WordsGenerated: copywriter.CountWords(resp.Content),
				Timestamp:      time.Now().UTC().Format(timestampLayout),
			},
		})
	}
}

// maps a binding failure to the matching 4xx response
func rejectBinding(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	var validationErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError

	switch {
	case stderrors.As(err, &maxBytesErr):
		errors.PayloadTooLarge(c)

	// missing/empty prompt, or an empty JSON body
	case stderrors.As(err, &validationErrs), stderrors.Is(err, io.EOF):
		errors.BadRequest(c, errors.MessagePromptRequired)

	// false, 0 and other non-string prompts carry no usable text
	case stderrors.As(err, &typeErr) && typeErr.Field == "prompt":
		errors.BadRequest(c, errors.MessagePromptRequired)

	default:
		logger.Debug("rejected malformed request body", "error", err)
		errors.BadRequest(c, errors.MessageInvalidBody)
	}
}
