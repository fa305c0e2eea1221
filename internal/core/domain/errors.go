package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrTimeout is returned when a single request attempt exceeds its deadline.
	ErrTimeout = zerr.New("request deadline exceeded")

	// ErrNetwork is returned for connection-level failures after retries are exhausted.
	ErrNetwork = zerr.New("network request failed")

	// ErrUploadToken is returned when the upload authorization request fails.
	ErrUploadToken = zerr.New("upload authorization failed")

	// ErrUploadTransfer is returned when the storage provider rejects the image bytes.
	ErrUploadTransfer = zerr.New("image transfer rejected")

	// ErrTitleRequired is returned when a recipe payload has no title.
	ErrTitleRequired = zerr.New("recipe title is required")

	// ErrInvalidServings is returned when servings is zero or negative.
	ErrInvalidServings = zerr.New("servings must be positive")
)

// HTTPError carries a non-2xx response whose body did not conform to the
// problem-detail shape.
type HTTPError struct {
	Status  int
	Reason  string
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("http %d %s", e.Status, e.Reason)
}

// ProblemDetails mirrors an RFC 7807 error payload. It is surfaced verbatim
// so callers can render standardized messages.
type ProblemDetails struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title,omitempty"`
	Status int    `json:"status,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func (e *ProblemDetails) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (%d): %s", e.Title, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s (%d)", e.Title, e.Status)
}
