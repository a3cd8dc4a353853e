// Package apierror is the closed taxonomy of client-facing failures. It is
// produced only by the boundary layer: the repository and signer return
// sentinel values and never raise these.
package apierror

import "encoding/json"

// Error carries a stable machine-readable code alongside the HTTP status the
// boundary layer responds with.
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// MarshalJSON serializes to {"error":{"code":...,"message":...}}.
func (e *Error) MarshalJSON() ([]byte, error) {
	type payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	return json.Marshal(struct {
		Error payload `json:"error"`
	}{
		Error: payload{Code: e.Code, Message: e.Message},
	})
}

func newError(status int, code, defaultMessage, message string) *Error {
	if message == "" {
		message = defaultMessage
	}
	return &Error{StatusCode: status, Code: code, Message: message}
}

// Internal is the base case. An empty message selects the variant default.
func Internal(message string) *Error {
	return newError(500, "INTERNAL_ERROR", "An internal error occurred", message)
}

func BadRequest(message string) *Error {
	return newError(400, "BAD_REQUEST", "Bad request", message)
}

func NotFound(message string) *Error {
	return newError(404, "NOT_FOUND", "Resource not found", message)
}

func Conflict(message string) *Error {
	return newError(409, "CONFLICT", "Resource conflict", message)
}

func Forbidden(message string) *Error {
	return newError(403, "FORBIDDEN", "Access forbidden", message)
}
