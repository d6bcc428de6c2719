package marketplace

import (
	"fmt"
	"net/http"
)

// AuthError means the marketplace rejected the configured credentials.
type AuthError struct {
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("marketplace rejected credentials: %d - %s", e.Status, e.Body)
}

// HTTPError is any other non-2xx response.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("API request failed: %d - %s", e.Status, e.Body)
}

// NewStatusError maps a non-2xx status to the right error type.
func NewStatusError(status int, body string) error {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return &AuthError{Status: status, Body: body}
	}
	return &HTTPError{Status: status, Body: body}
}
