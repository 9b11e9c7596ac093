package gateway

import (
	"errors"
	"fmt"
)

// ErrNetwork is returned when no response from the server reached the
// client at all. Wrapped errors carry the transport detail.
var ErrNetwork = errors.New("network error - no response from server")

// RemoteError is returned when the server responded with a failure status.
// Message is the server-provided error text when the body carried one.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// RequestError is returned for failures local to the client: request
// construction, payload encoding, or response decoding.
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// errorBody is the error envelope the API uses on failure responses.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}
