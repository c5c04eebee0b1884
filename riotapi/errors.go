package riotapi

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the Riot API
type APIError struct {
	StatusCode int
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("riot api returned status %d for %s", e.StatusCode, e.Endpoint)
}

// IsNotFound reports whether err is a Riot API 404. Every other failure
// (429, 5xx, transport errors, timeouts) is treated as rate-limit class by
// callers: stop paging, keep partial results, retry on a later sync.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
