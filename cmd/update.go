package cmd

import (
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the userchrome currently in use",
	Long:  `Retrieve the installed userchrome again and reinstall it, picking up upstream changes and pref edits.`,
	Args:  cobra.NoArgs,
	RunE:  runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	profile, err := requireProfile(cfg)
	if err != nil {
		return err
	}

	sw := newSwitcher(cmd.OutOrStdout())

	name, err := sw.Installed(profile)
	if err != nil {
		return err
	}

	uc, err := findUserchrome(cfg, name)
	if err != nil {
		return err
	}

	if err := checkBrowser(cmd.Context()); err != nil {
		return err
	}

	return sw.Switch(cmd.Context(), uc, profile)
}
