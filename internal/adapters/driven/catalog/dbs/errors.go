package dbs

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the DBS reader.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dbs: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsNotFound checks if the error indicates the resource was not found.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsBadRequest checks if the error indicates a rejected query,
// which is how DBS reports malformed or unknown dataset names.
func IsBadRequest(err error) bool {
	return hasStatus(err, http.StatusBadRequest)
}

// IsUnauthorized checks if the error indicates missing or rejected credentials.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized) || hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}
