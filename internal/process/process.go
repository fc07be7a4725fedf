// Package process checks whether the browser is currently running, so that
// switching themes does not race a live profile.
package process

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// DefaultName is the executable name Firefox runs as
const DefaultName = "firefox"

// Checker reports whether the browser is running
type Checker interface {
	IsRunning(ctx context.Context) (bool, error)
}

// Lister enumerates the executable names of running processes
type Lister func(ctx context.Context) ([]string, error)

// ProcessChecker matches running process names against Name
type ProcessChecker struct {
	Name string

	// List defaults to ListNames
	List Lister
}

// NewChecker returns a checker for the Firefox executable
func NewChecker() *ProcessChecker {
	return &ProcessChecker{Name: DefaultName}
}

// IsRunning is true when any process name contains Name, ignoring case and
// an .exe suffix, so firefox-esr and firefox-bin count too. The result may be
// stale by the time it is used.
func (c *ProcessChecker) IsRunning(ctx context.Context) (bool, error) {
	list := c.List
	if list == nil {
		list = ListNames
	}

	names, err := list(ctx)
	if err != nil {
		return false, err
	}

	want := normalize(c.Name)
	for _, name := range names {
		if strings.Contains(normalize(name), want) {
			return true, nil
		}
	}
	return false, nil
}

// ListNames returns the names of all processes visible to the current user.
// Processes that exit while being inspected are skipped.
func ListNames(ctx context.Context) ([]string, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

func normalize(name string) string {
	name = strings.ToLower(filepath.Base(name))
	return strings.TrimSuffix(name, ".exe")
}
