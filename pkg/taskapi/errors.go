package taskapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// GenericConnectivityMessage is shown when the backend could not be
// reached or returned no structured failure body.
const GenericConnectivityMessage = "Could not reach the server. Please try again."

// Error is the normalized failure for every gateway call. Message is
// always safe to surface to the user: the backend's own message when a
// structured body was present, the generic connectivity message
// otherwise.
type Error struct {
	StatusCode int // 0 when the request never reached the backend
	Message    string
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("taskapi: %s: %v", e.Message, e.cause)
	}
	return fmt.Sprintf("taskapi: %d: %s", e.StatusCode, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// IsAuthError reports whether err is a 401 from the backend, meaning
// the session token is missing, expired, or revoked.
func IsAuthError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// UserMessage extracts the surfaceable message from a gateway error,
// falling back to the generic connectivity message for anything else.
func UserMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return GenericConnectivityMessage
}

func connectivityError(cause error) *Error {
	return &Error{Message: GenericConnectivityMessage, cause: cause}
}

func backendError(resp *http.Response) *Error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return &Error{StatusCode: resp.StatusCode, Message: body.Message}
	}
	return &Error{StatusCode: resp.StatusCode, Message: GenericConnectivityMessage}
}
