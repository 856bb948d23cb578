package gateway

import "fmt"

// FetchError reports a non-success HTTP status from one endpoint.
type FetchError struct {
	Endpoint string
	Status   int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.Endpoint, e.Status)
}
