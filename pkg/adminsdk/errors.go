package adminsdk

import "fmt"

// Error codes used in ErrorResponse.Error.
const (
	ErrorCodeInvalidRequest = "invalid_request"
	ErrorCodeInvalidToken   = "invalid_token"
	ErrorCodeUnauthorized   = "unauthorized"
	ErrorCodeNotFound       = "not_found"
	ErrorCodeConflict       = "conflict"
	ErrorCodeUnprocessable  = "unprocessable_entity"
	ErrorCodeServerError    = "server_error"
)

// APIError is returned by SDK calls when the server responds with a
// non-success status. It carries the HTTP status together with the
// server's error body.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("admin api: %d %s: %s", e.StatusCode, e.Code, e.Description)
}
