// Package switcher installs a userchrome into a Firefox profile, or removes
// the installed one, and keeps the profile's managed prefs in sync.
package switcher

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ryanccn/nyoom/internal/config"
	nyoomerrors "github.com/ryanccn/nyoom/internal/errors"
	"github.com/ryanccn/nyoom/internal/fsutil"
	"github.com/ryanccn/nyoom/internal/logging"
	"github.com/ryanccn/nyoom/internal/source"
	"github.com/ryanccn/nyoom/internal/ui"
	"github.com/ryanccn/nyoom/internal/userjs"
)

const (
	// ChromeDir is the profile subdirectory Firefox loads userChrome.css from
	ChromeDir = "chrome"

	// MarkerFile records the name of the installed userchrome
	MarkerFile = ".nyoom-chrome-name"
)

// Switcher runs the switch pipeline
type Switcher struct {
	Retriever *source.Retriever
	Runner    ScriptRunner
	Out       io.Writer
	Log       logrus.FieldLogger

	// Backup keeps chrome directories and preference files nyoom did not
	// write itself as timestamped .bak copies instead of overwriting them
	Backup bool

	Now func() time.Time
}

// New returns a switcher with the default script runner, writing progress to
// out
func New(retriever *source.Retriever, out io.Writer) *Switcher {
	return &Switcher{
		Retriever: retriever,
		Runner:    ExecRunner{},
		Out:       out,
		Log:       logging.Log,
		Backup:    true,
		Now:       time.Now,
	}
}

// Switch installs uc into profile. A nil uc uninstalls the current
// userchrome. Every step runs in order and the first failure aborts; steps
// already completed are not rolled back.
func (s *Switcher) Switch(ctx context.Context, uc *config.Userchrome, profile string) error {
	if !fsutil.IsDir(profile) {
		return nyoomerrors.NewPathError(profile, "switch", nyoomerrors.ErrNotADirectory)
	}

	out := s.Out
	if out == nil {
		out = io.Discard
	}
	steps := ui.NewSteps(out)
	now := s.now()

	var prefs []config.Pref
	if uc != nil {
		ui.PrintUserchrome(out, uc, false, ui.Normal)
		io.WriteString(out, "\n")

		if err := s.install(ctx, steps, uc, profile, now); err != nil {
			return err
		}
		prefs = uc.Prefs
	} else {
		steps.Next("removing userchrome")
		s.log().WithField("profile", profile).Debug("removing chrome directory")
		if err := os.RemoveAll(filepath.Join(profile, ChromeDir)); err != nil {
			return nyoomerrors.NewPathError(filepath.Join(profile, ChromeDir), "remove", err)
		}
	}

	steps.Next("applying user.js")
	if err := s.applyPrefs(ctx, steps, prefs, profile, now); err != nil {
		return err
	}

	steps.Done()
	return nil
}

func (s *Switcher) install(ctx context.Context, steps *ui.Steps, uc *config.Userchrome, profile string, now time.Time) error {
	log := s.log().WithField("userchrome", uc.Name)

	steps.Next("retrieving source")
	src, err := source.Parse(uc.Source)
	if err != nil {
		return nyoomerrors.NewUserchromeError(uc.Name, "parse source", err)
	}

	tmp, err := os.MkdirTemp("", "nyoom-source-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	log.WithFields(logrus.Fields{"source": src.String(), "dir": tmp}).Debug("retrieving")
	if err := s.retriever().Retrieve(ctx, src, tmp); err != nil {
		return nyoomerrors.NewUserchromeError(uc.Name, "retrieve", err)
	}

	steps.Next("installing userchrome")
	steps.Detail(profile)

	installFrom := tmp
	if fsutil.IsDir(filepath.Join(tmp, ChromeDir)) {
		installFrom = filepath.Join(tmp, ChromeDir)
	}

	chrome := filepath.Join(profile, ChromeDir)
	if fsutil.Exists(chrome) {
		if s.Backup && !fsutil.Exists(filepath.Join(chrome, MarkerFile)) {
			backup := fsutil.BackupName(chrome, now)
			log.WithField("backup", backup).Info("chrome directory not managed by nyoom, backing it up")
			if err := os.Rename(chrome, backup); err != nil {
				return nyoomerrors.NewPathError(chrome, "back up", err)
			}
		} else if err := os.RemoveAll(chrome); err != nil {
			return nyoomerrors.NewPathError(chrome, "remove", err)
		}
	}

	log.WithFields(logrus.Fields{"from": installFrom, "to": chrome}).Debug("copying chrome")
	if err := fsutil.CopyTreeWithLogger(installFrom, chrome, log); err != nil {
		return nyoomerrors.NewUserchromeError(uc.Name, "install", err)
	}

	if err := os.WriteFile(filepath.Join(chrome, MarkerFile), []byte(uc.Name), 0644); err != nil {
		return nyoomerrors.NewUserchromeError(uc.Name, "install", err)
	}
	return nil
}

func (s *Switcher) applyPrefs(ctx context.Context, steps *ui.Steps, prefs []config.Pref, profile string, now time.Time) error {
	target, arkenfox := userjs.Target(profile)

	opts := userjs.Options{Backup: s.Backup, Now: now, Log: s.log()}
	if err := userjs.Patch(target, prefs, opts); err != nil {
		return nyoomerrors.NewPathError(target, "patch", err)
	}

	if !arkenfox {
		return nil
	}

	steps.Next("updating arkenfox")
	runner := s.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	for _, script := range []string{"updater", "prefsCleaner"} {
		s.log().WithField("script", script).Debug("running arkenfox script")
		if err := runner.Run(ctx, profile, script, "-s"); err != nil {
			return err
		}
	}
	return nil
}

// Installed returns the name of the userchrome currently installed in
// profile
func (s *Switcher) Installed(profile string) (string, error) {
	return Installed(profile)
}

// Installed reads the installed userchrome name from the marker file
func Installed(profile string) (string, error) {
	data, err := os.ReadFile(filepath.Join(profile, ChromeDir, MarkerFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nyoomerrors.ErrNothingInstalled
		}
		return "", err
	}

	name := strings.TrimSpace(string(data))
	if name == "" {
		return "", nyoomerrors.ErrNothingInstalled
	}
	return name, nil
}

func (s *Switcher) retriever() *source.Retriever {
	if s.Retriever == nil {
		return source.NewRetriever(nil)
	}
	return s.Retriever
}

func (s *Switcher) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Switcher) log() logrus.FieldLogger {
	return logging.Or(s.Log)
}
