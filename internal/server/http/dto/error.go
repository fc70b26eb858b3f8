package dto

// ErrorResponse is the uniform error body returned by every failing handler.
// Fields carries per-field validation detail when available.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
