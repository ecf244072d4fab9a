package errors

// standardized error envelope
type ErrorResponse struct {
	Error   string `json:"error"`             // human-readable error
	Message string `json:"message,omitempty"` // underlying detail, development only
}

const (
	MessagePromptRequired   = "Prompt is required"
	MessageInvalidBody      = "Invalid request body"
	MessageBodyTooLarge     = "Request body too large"
	MessageRouteNotFound    = "Route not found"
	MessageTooManyRequests  = "Too many requests, please try again later."
	MessageGenerationFailed = "Failed to generate content"
	MessageUnexpected       = "Something went wrong!"
)

const (
	// gin context key that enables error details in responses
	ExposeDetailsKey = "errors.expose_details"

	// gin context key holding the request id
	RequestIDKey = "request_id"
)
