package health

// health check response
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
