package persistence

import (
	"errors"
	"fmt"
)

// Standard persistence error types that all implementations should use.
var (
	// ErrPageNotFound indicates a page was not found by the given identifier.
	ErrPageNotFound = errors.New("page not found")

	// ErrAppNotFound indicates no pages exist for the given app.
	ErrAppNotFound = errors.New("app not found")

	// ErrPageAlreadyExists indicates a page with the same identifier already exists.
	ErrPageAlreadyExists = errors.New("page already exists")
)

// PageError wraps page-related errors with additional context.
type PageError struct {
	Op     string // Operation being performed (e.g., "PageByID", "Save", "Delete")
	AppID  string
	PageID string
	Err    error
}

func (e *PageError) Error() string {
	if e.PageID != "" {
		return fmt.Sprintf("%s operation failed for page %s in app %s: %v", e.Op, e.PageID, e.AppID, e.Err)
	}

	return fmt.Sprintf("%s operation failed for app %s: %v", e.Op, e.AppID, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

func (e *PageError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewPageError creates a new page error with context.
func NewPageError(op, appID, pageID string, err error) *PageError {
	return &PageError{
		Op:     op,
		AppID:  appID,
		PageID: pageID,
		Err:    err,
	}
}

// IsPageNotFound checks if an error indicates a page was not found.
func IsPageNotFound(err error) bool {
	return errors.Is(err, ErrPageNotFound)
}
