package commerce

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is matched by APIError of 404 responses.
var ErrNotFound = errors.New("not found")

// APIError is error response of commerce admin API.
type APIError struct {
	Status  int    `json:"-"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("commerce api responded with status %d", e.Status)
	}
	return fmt.Sprintf("commerce api responded with status %d (%s): %s", e.Status, e.Type, e.Message)
}

// Is reports whether APIError matches ErrNotFound.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}
