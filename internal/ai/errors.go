package ai

import "fmt"

// UpstreamError reports a failed model invocation: a non-success status from
// the provider or a transport failure. StatusCode is zero when the request
// never produced a status.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("model API error (status %d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("model API error: %s", e.Detail)
}
