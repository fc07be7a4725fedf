package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ryanccn/nyoom/internal/config"
	nyoomerrors "github.com/ryanccn/nyoom/internal/errors"
	"github.com/ryanccn/nyoom/internal/logging"
	"github.com/ryanccn/nyoom/internal/process"
	"github.com/ryanccn/nyoom/internal/ui"
)

var Version = "dev"

var (
	configPath     string
	logLevel       string
	noRunningCheck bool
)

// browserChecker is swapped out in tests
var browserChecker process.Checker = process.NewChecker()

var rootCmd = &cobra.Command{
	Use:   "nyoom",
	Short: "Firefox userchrome manager",
	Long: `nyoom manages Firefox userchrome themes. Themes are tracked by name in a
config file together with their source (a GitHub, Codeberg or GitLab repo, an
archive URL or a local directory) and the prefs they need, and are installed
into the configured Firefox profile with 'nyoom switch'.`,
	Version:           Version,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func setup(cmd *cobra.Command, args []string) error {
	if err := logging.SetLevel(logLevel); err != nil {
		return err
	}

	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to resolve config path: %w", err)
		}
		configPath = p
	}

	expanded, err := config.ExpandPath(configPath)
	if err != nil {
		return err
	}
	configPath = expanded

	logging.Log.WithField("config", configPath).Debug("using config file")
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.ErrorStyle.Render("Encountered error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file to use (default is the platform config directory)")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "loglevel", "l", "warn", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noRunningCheck, "no-running-check", false, "skip checking whether Firefox is running")

	rootCmd.RegisterFlagCompletionFunc("loglevel", cobra.FixedCompletions(
		[]string{"trace", "debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp))
}

func loadConfig() (*config.Config, error) {
	return config.Read(configPath)
}

func requireProfile(cfg *config.Config) (string, error) {
	if cfg.Profile == "" {
		return "", nyoomerrors.ErrNoProfile
	}
	return cfg.Profile, nil
}

func findUserchrome(cfg *config.Config, name string) (*config.Userchrome, error) {
	uc := cfg.Find(name)
	if uc == nil {
		return nil, fmt.Errorf("%w: %q", nyoomerrors.ErrUserchromeNotFound, name)
	}
	return uc, nil
}

// checkName rejects names that are taken or that switch treats specially
func checkName(cfg *config.Config, name string) error {
	if name == uninstallName {
		return fmt.Errorf("%w: %q uninstalls the current userchrome", nyoomerrors.ErrReservedName, name)
	}
	if cfg.Has(name) {
		return fmt.Errorf("%w: %q", nyoomerrors.ErrUserchromeExists, name)
	}
	return nil
}

// checkBrowser refuses to continue while Firefox is running. A failure to
// list processes is logged and ignored.
func checkBrowser(ctx context.Context) error {
	if noRunningCheck {
		return nil
	}

	running, err := browserChecker.IsRunning(ctx)
	if err != nil {
		logging.Log.WithError(err).Warn("could not check whether Firefox is running")
		return nil
	}
	if running {
		return nyoomerrors.ErrBrowserRunning
	}
	return nil
}
