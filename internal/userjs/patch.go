// Package userjs maintains the nyoom-managed block of user_pref lines inside
// a Firefox profile's user.js (or arkenfox's user-overrides.js).
package userjs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ryanccn/nyoom/internal/config"
	"github.com/ryanccn/nyoom/internal/fsutil"
	"github.com/ryanccn/nyoom/internal/logging"
)

const (
	StartMarker = "/** nyoom-managed config; do not edit */"
	EndMarker   = "/** end of nyoom-managed config */"

	// StylesheetLine lets Firefox load userChrome.css at all
	StylesheetLine = `user_pref("toolkit.legacyUserProfileCustomizations.stylesheets", true);`

	UserJS      = "user.js"
	OverridesJS = "user-overrides.js"
)

// Line renders a single pref. Values are not escaped: a quote inside a
// non-raw value ends up in the file as-is.
func Line(p config.Pref) string {
	value := p.Value
	if !p.Raw {
		value = `"` + value + `"`
	}
	return `user_pref("` + p.Key + `", ` + value + `);`
}

// Block returns the managed block for prefs, markers included
func Block(prefs []config.Pref) []string {
	lines := make([]string, 0, len(prefs)+3)
	lines = append(lines, StartMarker, StylesheetLine)
	for _, p := range prefs {
		lines = append(lines, Line(p))
	}
	return append(lines, EndMarker)
}

// splitLines splits content into lines. A trailing newline does not produce
// a final empty line and CRLF endings are normalized.
func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// findBlock returns the indices of the start and end marker lines. The first
// end marker preceded by a start marker closes the block, and the nearest
// start marker above it opens it, so stray markers are left alone. ok is
// false when no such pair exists.
func findBlock(lines []string) (start, end int, ok bool) {
	start = -1
	for i, line := range lines {
		switch line {
		case StartMarker:
			start = i
		case EndMarker:
			if start >= 0 {
				return start, i, true
			}
		}
	}
	return -1, -1, false
}

// Render merges prefs into content. When content already has a managed
// block its interior is replaced, otherwise a new block is appended.
// replaced reports which of the two happened. The result always ends with
// a newline.
func Render(content string, prefs []config.Pref) (out string, replaced bool) {
	lines := splitLines(content)
	block := Block(prefs)

	var result []string
	if start, end, ok := findBlock(lines); ok {
		result = make([]string, 0, len(lines)+len(block))
		result = append(result, lines[:start]...)
		result = append(result, block...)
		result = append(result, lines[end+1:]...)
		replaced = true
	} else {
		result = make([]string, 0, len(lines)+len(block))
		result = append(result, lines...)
		result = append(result, block...)
	}

	return strings.Join(result, "\n") + "\n", replaced
}

// Options control Patch
type Options struct {
	// Backup copies a non-empty file without a managed block to
	// <file>.nyoom-<timestamp>.bak before the block is appended
	Backup bool

	// Now stamps backups; zero means time.Now()
	Now time.Time

	Log logrus.FieldLogger
}

// BackupPath returns where a backup of path taken at now is written
func BackupPath(path string, now time.Time) string {
	return fsutil.BackupName(path, now)
}

// Patch rewrites the managed block in the file at path. A missing file is
// treated as empty and created.
func Patch(path string, prefs []config.Pref, opts Options) error {
	log := logging.Or(opts.Log).WithField("path", path)

	perm := os.FileMode(0644)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if info, statErr := os.Stat(path); statErr == nil {
			perm = info.Mode().Perm()
		}
	case os.IsNotExist(err):
		log.Debug("preference file missing, creating it")
	default:
		return err
	}

	out, replaced := Render(string(data), prefs)

	if !replaced && opts.Backup && len(data) > 0 {
		now := opts.Now
		if now.IsZero() {
			now = time.Now()
		}
		backup := BackupPath(path, now)
		log.WithField("backup", backup).Info("no managed block found, backing up preference file")
		if err := os.WriteFile(backup, data, perm); err != nil {
			return fmt.Errorf("back up %s: %w", filepath.Base(path), err)
		}
	}

	log.WithFields(logrus.Fields{"prefs": len(prefs), "replaced": replaced}).Debug("writing managed block")
	return fsutil.WriteFileAtomic(path, []byte(out), perm)
}

// Target returns the file to patch inside profile. arkenfox is true when the
// profile follows the arkenfox convention and user-overrides.js is used.
func Target(profile string) (path string, arkenfox bool) {
	overrides := filepath.Join(profile, OverridesJS)
	if fsutil.Exists(overrides) {
		return overrides, true
	}
	return filepath.Join(profile, UserJS), false
}
