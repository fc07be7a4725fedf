package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ryanccn/nyoom/internal/config"
	nyoomerrors "github.com/ryanccn/nyoom/internal/errors"
	"github.com/ryanccn/nyoom/internal/picker"
	"github.com/ryanccn/nyoom/internal/switcher"
	"github.com/ryanccn/nyoom/internal/userjs"
)

type fakeChecker struct{ running bool }

func (f fakeChecker) IsRunning(context.Context) (bool, error) { return f.running, nil }

type env struct {
	t       *testing.T
	config  string
	profile string
}

func newEnv(t *testing.T) *env {
	t.Helper()

	prev := browserChecker
	browserChecker = fakeChecker{}
	t.Cleanup(func() { browserChecker = prev })

	return &env{
		t:       t,
		config:  filepath.Join(t.TempDir(), "nyoom.toml"),
		profile: t.TempDir(),
	}
}

// run executes the root command with args against the env's config file
func (e *env) run(args ...string) (string, error) {
	e.t.Helper()

	// flag variables outlive a single Execute
	configPath, logLevel, noRunningCheck = "", "warn", false
	listOutput, configSetRaw = "text", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", e.config}, args...))

	err := rootCmd.Execute()
	return ansi.Strip(out.String()), err
}

func (e *env) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err)
	return out
}

func (e *env) read() *config.Config {
	e.t.Helper()
	cfg, err := config.Read(e.config)
	require.NoError(e.t, err)
	return cfg
}

// localTheme creates a theme directory with a chrome subdirectory
func (e *env) localTheme(css string) string {
	e.t.Helper()
	dir := e.t.TempDir()
	require.NoError(e.t, os.MkdirAll(filepath.Join(dir, "chrome"), 0755))
	require.NoError(e.t, os.WriteFile(filepath.Join(dir, "chrome", "userChrome.css"), []byte(css), 0644))
	return dir
}

func TestAddAndList(t *testing.T) {
	e := newEnv(t)

	out := e.mustRun("add", "shyfox", "github:Naezr/ShyFox")
	assert.Contains(t, out, "+ shyfox github:Naezr/ShyFox")

	// hosted shorthands are stored as typed
	assert.Equal(t, "github:Naezr/ShyFox", e.read().Find("shyfox").Source)

	out = e.mustRun("list")
	assert.Contains(t, out, "· shyfox github:Naezr/ShyFox")

	out = e.mustRun("list", "--output", "json")
	var listed []config.Userchrome
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "shyfox", listed[0].Name)

	out = e.mustRun("list", "-o", "yaml")
	listed = nil
	require.NoError(t, yaml.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)

	_, err := e.run("list", "-o", "xml")
	assert.Error(t, err)
}

func TestListEmptyJSON(t *testing.T) {
	e := newEnv(t)
	assert.Equal(t, "[]\n", e.mustRun("list", "-o", "json"))
}

func TestAddCanonicalizesPath(t *testing.T) {
	e := newEnv(t)
	dir := e.localTheme("x")
	canonical, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	e.mustRun("add", "mine", dir)
	assert.Equal(t, canonical, e.read().Find("mine").Source)

	e.mustRun("add", "mine2", "path:"+dir+"/chrome/..")
	assert.Equal(t, "path:"+canonical, e.read().Find("mine2").Source)
}

func TestAddRejects(t *testing.T) {
	e := newEnv(t)
	e.mustRun("add", "a", "github:o/a")

	_, err := e.run("add", "a", "github:o/b")
	assert.ErrorIs(t, err, nyoomerrors.ErrUserchromeExists)

	_, err = e.run("add", "b", "not a source")
	assert.Error(t, err)

	_, err = e.run("add", "out", "github:o/out")
	assert.ErrorIs(t, err, nyoomerrors.ErrReservedName)

	_, err = e.run("preset", "out")
	assert.ErrorIs(t, err, nyoomerrors.ErrReservedName)

	assert.Len(t, e.read().Userchromes, 1)
}

func TestRemove(t *testing.T) {
	e := newEnv(t)
	e.mustRun("add", "a", "github:o/a")

	out := e.mustRun("remove", "a")
	assert.Contains(t, out, "- a github:o/a")
	assert.Empty(t, e.read().Userchromes)

	_, err := e.run("remove", "a")
	assert.ErrorIs(t, err, nyoomerrors.ErrUserchromeNotFound)
}

func TestPreset(t *testing.T) {
	e := newEnv(t)

	out := e.mustRun("preset")
	assert.Contains(t, out, "shyfox")

	e.mustRun("preset", "shyfox")
	uc := e.read().Find("shyfox")
	require.NotNil(t, uc)
	assert.Equal(t, "github:Naezr/ShyFox", uc.Source)
	assert.NotEmpty(t, uc.Prefs)

	_, err := e.run("preset", "shyfox")
	assert.ErrorIs(t, err, nyoomerrors.ErrUserchromeExists)

	_, err = e.run("preset", "nope")
	assert.ErrorIs(t, err, nyoomerrors.ErrPresetNotFound)
}

func TestProfile(t *testing.T) {
	e := newEnv(t)

	assert.Contains(t, e.mustRun("profile"), "[not set]")

	canonical, err := filepath.EvalSymlinks(e.profile)
	require.NoError(t, err)

	out := e.mustRun("profile", e.profile)
	assert.Equal(t, canonical+"\n", out)
	assert.Equal(t, canonical, e.read().Profile)

	_, err = e.run("profile", filepath.Join(e.profile, "missing"))
	assert.Error(t, err)
	assert.Equal(t, canonical, e.read().Profile)
}

func TestConfigSetUnsetList(t *testing.T) {
	e := newEnv(t)
	e.mustRun("add", "a", "github:o/a")

	e.mustRun("config", "set", "a", "browser.uidensity", "1", "--raw")
	e.mustRun("config", "set", "a", "font.name", "Iosevka")
	e.mustRun("config", "set", "a", "browser.uidensity", "2", "-r")

	assert.Equal(t, []config.Pref{
		{Key: "browser.uidensity", Value: "2", Raw: true},
		{Key: "font.name", Value: "Iosevka"},
	}, e.read().Find("a").Prefs)

	out := e.mustRun("config", "list", "a")
	assert.Equal(t, "browser.uidensity: 2 (raw)\nfont.name: Iosevka\n", out)

	e.mustRun("config", "unset", "a", "browser.uidensity")
	assert.Equal(t, []config.Pref{{Key: "font.name", Value: "Iosevka"}}, e.read().Find("a").Prefs)

	_, err := e.run("config", "list", "nope")
	assert.ErrorIs(t, err, nyoomerrors.ErrUserchromeNotFound)
}

func TestSwitchRequiresProfile(t *testing.T) {
	e := newEnv(t)
	e.mustRun("add", "a", "github:o/a")

	_, err := e.run("switch", "a")
	assert.ErrorIs(t, err, nyoomerrors.ErrNoProfile)
}

func TestSwitchUnknown(t *testing.T) {
	e := newEnv(t)
	e.mustRun("profile", e.profile)

	_, err := e.run("switch", "nope")
	assert.ErrorIs(t, err, nyoomerrors.ErrUserchromeNotFound)
}

func TestSwitchRefusesWhileBrowserRuns(t *testing.T) {
	e := newEnv(t)
	e.mustRun("profile", e.profile)
	e.mustRun("add", "mine", e.localTheme("css"))
	browserChecker = fakeChecker{running: true}

	_, err := e.run("switch", "mine")
	assert.ErrorIs(t, err, nyoomerrors.ErrBrowserRunning)
	assert.NoDirExists(t, filepath.Join(e.profile, switcher.ChromeDir))

	e.mustRun("--no-running-check", "switch", "mine")
	assert.DirExists(t, filepath.Join(e.profile, switcher.ChromeDir))
}

func TestSwitchUpdateAndOut(t *testing.T) {
	e := newEnv(t)
	e.mustRun("profile", e.profile)
	theme := e.localTheme("v1")
	e.mustRun("add", "mine", theme)
	e.mustRun("config", "set", "mine", "layout.css.x", "true", "--raw")

	_, err := e.run("update")
	assert.ErrorIs(t, err, nyoomerrors.ErrNothingInstalled)

	out := e.mustRun("switch", "mine")
	assert.Contains(t, out, "installing userchrome")
	assert.Contains(t, out, "done!")

	css := filepath.Join(e.profile, switcher.ChromeDir, "userChrome.css")
	data, err := os.ReadFile(css)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data))

	userJS, err := os.ReadFile(filepath.Join(e.profile, userjs.UserJS))
	require.NoError(t, err)
	assert.Contains(t, string(userJS), `user_pref("layout.css.x", true);`)

	// update picks up changes to the source
	require.NoError(t, os.WriteFile(filepath.Join(theme, "chrome", "userChrome.css"), []byte("v2"), 0644))
	e.mustRun("update")
	data, err = os.ReadFile(css)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))

	e.mustRun("switch", "out")
	assert.NoDirExists(t, filepath.Join(e.profile, switcher.ChromeDir))
	userJS, err = os.ReadFile(filepath.Join(e.profile, userjs.UserJS))
	require.NoError(t, err)
	assert.NotContains(t, string(userJS), "layout.css.x")
}

func TestSwitchPicker(t *testing.T) {
	e := newEnv(t)
	e.mustRun("profile", e.profile)
	e.mustRun("add", "mine", e.localTheme("css"))
	e.mustRun("add", "other", "github:o/other")

	prev := pickUserchrome
	t.Cleanup(func() { pickUserchrome = prev })

	var offered []picker.Item
	pickUserchrome = func(title string, items []picker.Item) (string, error) {
		offered = items
		return "mine", nil
	}

	e.mustRun("switch")
	require.Len(t, offered, 2)
	assert.Equal(t, "mine", offered[0].ID)

	name, err := switcher.Installed(e.profile)
	require.NoError(t, err)
	assert.Equal(t, "mine", name)

	// the installed theme is marked next time; quitting changes nothing
	pickUserchrome = func(title string, items []picker.Item) (string, error) {
		offered = items
		return "", nil
	}
	out := e.mustRun("switch")
	assert.True(t, offered[0].Current)
	assert.False(t, offered[1].Current)
	assert.Contains(t, out, "No userchrome selected")
}

func TestCompletion(t *testing.T) {
	e := newEnv(t)
	out := e.mustRun("completion", "bash")
	assert.Contains(t, out, "nyoom")

	_, err := e.run("completion", "tcsh")
	assert.Error(t, err)
}

func TestBadLogLevel(t *testing.T) {
	e := newEnv(t)
	_, err := e.run("--loglevel", "loud", "list")
	assert.Error(t, err)
}
