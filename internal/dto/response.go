package dto

// Response is the envelope every endpoint returns.
type Response struct {
	Success      bool   `json:"success"`
	Data         any    `json:"data,omitempty"`
	Message      string `json:"message,omitempty"`
	ErrorDetails string `json:"errorDetails,omitempty"`
	StatusCode   int    `json:"statusCode"`
}
