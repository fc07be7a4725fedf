package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNoProfile          = errors.New("no profile configured: run 'nyoom profile <dir>' first")
	ErrUserchromeNotFound = errors.New("userchrome not found")
	ErrUserchromeExists   = errors.New("userchrome already exists")
	ErrPresetNotFound     = errors.New("preset not found")
	ErrBrowserRunning     = errors.New("Firefox is running, refusing to continue")
	ErrNothingInstalled   = errors.New("no installed userchrome found")
	ErrNotADirectory      = errors.New("not a directory")
	ErrScriptFailed       = errors.New("arkenfox script failed")
	ErrReservedName       = errors.New("name is reserved")
)

// UserchromeError wraps errors with userchrome context
type UserchromeError struct {
	Name string
	Op   string
	Err  error
}

func (e *UserchromeError) Error() string {
	return fmt.Sprintf("userchrome %q: %s: %v", e.Name, e.Op, e.Err)
}

func (e *UserchromeError) Unwrap() error {
	return e.Err
}

// NewUserchromeError creates a new userchrome error
func NewUserchromeError(name, op string, err error) *UserchromeError {
	return &UserchromeError{Name: name, Op: op, Err: err}
}

// PathError wraps errors with path context
type PathError struct {
	Path string
	Op   string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// NewPathError creates a new path error
func NewPathError(path, op string, err error) *PathError {
	return &PathError{Path: path, Op: op, Err: err}
}
