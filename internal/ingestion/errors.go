package ingestion

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for file extensions no decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// DecodeError reports a document that could not be decoded to text. Callers
// treat it as a per-file warning: the candidate is recorded with empty text
// and flagged for review, and the batch continues.
type DecodeError struct {
	Path   string
	Format string
	Cause  error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to decode %s document %s: %v", e.Format, e.Path, e.Cause)
	}
	return fmt.Sprintf("failed to decode %s document %s", e.Format, e.Path)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
