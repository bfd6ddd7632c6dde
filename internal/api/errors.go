package api

import (
	"errors"
	"fmt"
	"net/http"
)

// bodySnippetLimit caps how much of an error response body appears in the
// error message. The full body stays available on the Error value.
const bodySnippetLimit = 512

// Error represents a failed API call: either a transport failure (Cause set)
// or a non-2xx response (StatusCode and Body set). The backend's error payload
// is carried through untranslated.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Body       string
	Cause      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("api: %s %s: %s", e.Method, e.Path, e.Message)
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Body != "" {
		snippet := e.Body
		if len(snippet) > bodySnippetLimit {
			snippet = snippet[:bodySnippetLimit] + "..."
		}
		return fmt.Sprintf("%s: %s", msg, snippet)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsStatus reports whether err is an API error with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// IsUnauthorized reports whether err is a 401 response, meaning the stored
// credential is missing, expired, or rejected by the backend.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}
