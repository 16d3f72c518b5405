package api

import "fmt"

const (
	CodeNetwork      = "NETWORK_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeBadPayload   = "BAD_PAYLOAD"
	CodeAPI          = "API_ERROR"
)

// Error is the single error type every request failure is normalized to,
// whether the transport failed, the server answered non-2xx or the payload
// did not match the endpoint schema.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api: %s (%d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("api: %s: %s", e.Code, e.Message)
}

func networkError(err error) *Error {
	return &Error{Code: CodeNetwork, Message: "Network error: " + err.Error()}
}

func payloadError(msg string) *Error {
	return &Error{Code: CodeBadPayload, Message: msg}
}
