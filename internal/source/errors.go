package source

import (
	"errors"
	"fmt"
)

// SourceError represents a source-related error
type SourceError struct {
	Op     string // operation
	Source string // source identifier
	Err    error  // underlying error
}

func (e *SourceError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Source, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Common errors
var (
	ErrInvalidSource        = errors.New("invalid source")
	ErrInvalidURL           = errors.New("not an absolute URL")
	ErrNotDirectory         = errors.New("not a directory")
	ErrUnsupportedExtension = errors.New("unsupported archive extension")
	ErrDownloadFailed       = errors.New("download failed")
)
