package client

import (
	"errors"
	"fmt"
)

// StatusNone marks a call that never received an HTTP response
// (connectivity, TLS, DNS).
const StatusNone = 0

// ErrNoContent reports a 200 response whose body did not contain
// choices[0].message.content.
var ErrNoContent = errors.New("no content in response")

// APIError carries the HTTP status of a failed provider call, or StatusNone
// when no response was received at all.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == StatusNone {
		return fmt.Sprintf("no response from provider: %s", e.Message)
	}
	return fmt.Sprintf("provider returned status %d: %s", e.Status, e.Message)
}
