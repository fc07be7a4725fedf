package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ryanccn/nyoom/internal/config"
	nyoomerrors "github.com/ryanccn/nyoom/internal/errors"
	"github.com/ryanccn/nyoom/internal/picker"
	"github.com/ryanccn/nyoom/internal/source"
	"github.com/ryanccn/nyoom/internal/switcher"
)

// uninstallName is the pseudo userchrome that removes the installed one
const uninstallName = "out"

// newSwitcher builds the switcher used by switch and update
var newSwitcher = func(out io.Writer) *switcher.Switcher {
	return switcher.New(source.NewRetriever(source.NewTermProgress(os.Stderr)), out)
}

// pickUserchrome asks for a userchrome interactively
var pickUserchrome = picker.RunSingle

var switchCmd = &cobra.Command{
	Use:   "switch [name]",
	Short: "Switch to a userchrome",
	Long: `Install a userchrome into the configured Firefox profile.

The profile's chrome directory is replaced with the userchrome's files and its
prefs are written to the nyoom-managed block in user.js (or user-overrides.js
for arkenfox users, followed by running the arkenfox updater and prefsCleaner).

Use 'out' as the name to uninstall the current userchrome. Without a name an
interactive picker is shown.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeSwitchTargets,
	RunE:              runSwitch,
}

func init() {
	rootCmd.AddCommand(switchCmd)
}

func runSwitch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	profile, err := requireProfile(cfg)
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		name, err = pick(cfg, profile)
		if err != nil {
			return err
		}
		if name == "" {
			fmt.Fprintln(cmd.ErrOrStderr(), "No userchrome selected")
			return nil
		}
	}

	var uc *config.Userchrome
	if name != uninstallName {
		uc, err = findUserchrome(cfg, name)
		if err != nil {
			return err
		}
	}

	if err := checkBrowser(cmd.Context()); err != nil {
		return err
	}

	return newSwitcher(cmd.OutOrStdout()).Switch(cmd.Context(), uc, profile)
}

func pick(cfg *config.Config, profile string) (string, error) {
	if len(cfg.Userchromes) == 0 {
		return "", fmt.Errorf("%w: add one with 'nyoom add' or 'nyoom preset'", nyoomerrors.ErrUserchromeNotFound)
	}

	installed, err := switcher.Installed(profile)
	if err != nil && !errors.Is(err, nyoomerrors.ErrNothingInstalled) {
		return "", err
	}

	items := make([]picker.Item, 0, len(cfg.Userchromes))
	for _, uc := range cfg.Userchromes {
		items = append(items, picker.Item{
			ID:      uc.Name,
			Label:   uc.Name,
			Detail:  uc.Source,
			Current: uc.Name == installed,
		})
	}

	return pickUserchrome("Switch to userchrome", items)
}
