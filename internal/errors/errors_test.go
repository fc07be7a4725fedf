package errors

import (
	"errors"
	"os"
	"testing"
)

func TestUserchromeError(t *testing.T) {
	err := NewUserchromeError("shyfox", "retrieve", ErrNotADirectory)

	if got, want := err.Error(), `userchrome "shyfox": retrieve: not a directory`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrNotADirectory) {
		t.Error("errors.Is() = false, want true")
	}
}

func TestPathError(t *testing.T) {
	err := NewPathError("/p/user.js", "patch", os.ErrPermission)

	if got, want := err.Error(), "patch: /p/user.js: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Error("errors.Is() = false, want true")
	}

	var pe *PathError
	if !errors.As(error(err), &pe) || pe.Path != "/p/user.js" {
		t.Errorf("errors.As() = %+v", pe)
	}
}
