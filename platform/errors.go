package platform

import "fmt"

// APIError reports a non-2xx platform response. The message carries enough
// request context (title, tag count, content length and format) to diagnose
// a remote rejection without re-sending the payload.
type APIError struct {
	Platform string
	Status   int
	Message  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Platform, e.Status, e.Message)
}

// CapabilityError reports an operation the platform does not support.
type CapabilityError struct {
	Platform  string
	Operation string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s does not support %s", e.Platform, e.Operation)
}
