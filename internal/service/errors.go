package service

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrInvalid       = errors.New("invalid")
	ErrSummarization = errors.New("summarization failed")
)

// MalformedResponseError is returned when a generation backend reply has
// no recognizable shape. Preview is bounded so it can be logged safely.
type MalformedResponseError struct {
	Preview string
}

func (e *MalformedResponseError) Error() string {
	return "unrecognized summary shape: " + e.Preview
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrSummarization
}
