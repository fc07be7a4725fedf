package switcher

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"

	nyoomerrors "github.com/ryanccn/nyoom/internal/errors"
)

// ScriptRunner runs one of the arkenfox helper scripts that live in the
// profile directory
type ScriptRunner interface {
	Run(ctx context.Context, profile, name string, args ...string) error
}

// ExecRunner runs <profile>/<name>.sh (.bat on Windows) with the profile as
// working directory. Output is discarded.
type ExecRunner struct{}

// ScriptPath returns the platform specific path of the named script
func ScriptPath(profile, name string) string {
	suffix := ".sh"
	if runtime.GOOS == "windows" {
		suffix = ".bat"
	}
	return filepath.Join(profile, name+suffix)
}

func (ExecRunner) Run(ctx context.Context, profile, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, ScriptPath(profile, name), args...)
	cmd.Dir = profile

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %v", nyoomerrors.ErrScriptFailed, name, err)
	}
	return nil
}
