package dto

// ErrorResponse is the body of every non-2xx API reply, e.g.
// {"error":"no delivery host available"}.
type ErrorResponse struct {
	Error string `json:"error" yaml:"error"`
}
