package ports

import "fmt"

// UpstreamError carries the status code and raw body of a failed upstream
// call. Single-query endpoints surface it to the client verbatim.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Body)
}
