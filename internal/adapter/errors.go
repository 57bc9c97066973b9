package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork means no response was received.
	ErrNetwork = errors.New("network failure")
	// ErrServerRejected means a response arrived with success=false or a
	// non-2xx status. The concrete value is a *RejectedError.
	ErrServerRejected = errors.New("server rejected request")
	// ErrMalformedResponse means the body could not be decoded into the
	// expected shape.
	ErrMalformedResponse = errors.New("malformed response")
)

// RejectedError carries the message the server sent with a failed response.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: http %d", ErrServerRejected, e.Status)
	}
	return fmt.Sprintf("%s: %s", ErrServerRejected, e.Message)
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrServerRejected
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...))
}
