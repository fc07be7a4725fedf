package switcher

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nyoomerrors "github.com/ryanccn/nyoom/internal/errors"
)

func writeScript(t *testing.T, profile, name, body string) {
	t.Helper()
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(profile, name+".sh"), []byte(script), 0755))
}

func TestExecRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts")
	}

	profile := t.TempDir()
	// records the working directory and arguments it was called with
	writeScript(t, profile, "updater", `pwd -P > ran.txt; echo "$@" >> ran.txt; echo noise; echo noise >&2`)

	require.NoError(t, ExecRunner{}.Run(context.Background(), profile, "updater", "-s"))

	data, err := os.ReadFile(filepath.Join(profile, "ran.txt"))
	require.NoError(t, err)

	canonical, err := filepath.EvalSymlinks(profile)
	require.NoError(t, err)
	assert.Equal(t, canonical+"\n-s\n", string(data))
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts")
	}

	profile := t.TempDir()
	writeScript(t, profile, "prefsCleaner", "exit 3")

	err := ExecRunner{}.Run(context.Background(), profile, "prefsCleaner", "-s")
	require.Error(t, err)
	assert.ErrorIs(t, err, nyoomerrors.ErrScriptFailed)
	assert.Contains(t, err.Error(), "prefsCleaner")
}

func TestExecRunnerMissingScript(t *testing.T) {
	err := ExecRunner{}.Run(context.Background(), t.TempDir(), "updater", "-s")
	assert.ErrorIs(t, err, nyoomerrors.ErrScriptFailed)
}
