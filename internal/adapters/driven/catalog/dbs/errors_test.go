package dbs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	err := &APIError{StatusCode: 400, Message: "bad dataset", URL: "https://example.org/files"}
	assert.Equal(t, "dbs: API error 400: bad dataset (URL: https://example.org/files)", err.Error())
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		notFound     bool
		badRequest   bool
		unauthorized bool
	}{
		{"404", &APIError{StatusCode: http.StatusNotFound}, true, false, false},
		{"400", &APIError{StatusCode: http.StatusBadRequest}, false, true, false},
		{"401", &APIError{StatusCode: http.StatusUnauthorized}, false, false, true},
		{"403", &APIError{StatusCode: http.StatusForbidden}, false, false, true},
		{"wrapped 400", fmt.Errorf("sample A: %w", &APIError{StatusCode: 400}), false, true, false},
		{"plain", errors.New("boom"), false, false, false},
		{"nil", nil, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
			assert.Equal(t, tt.badRequest, IsBadRequest(tt.err))
			assert.Equal(t, tt.unauthorized, IsUnauthorized(tt.err))
		})
	}
}
