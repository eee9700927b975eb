package types

// ErrorEnvelope is the body written for every failed request.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// MessageEnvelope is the minimal success body for command endpoints.
type MessageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ListEnvelope wraps list endpoints that report a total alongside the page.
type ListEnvelope[T any] struct {
	Success bool `json:"success"`
	Data    []T  `json:"data"`
	Total   int  `json:"total"`
}
