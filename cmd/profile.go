package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryanccn/nyoom/internal/source"
	"github.com/ryanccn/nyoom/internal/ui"
)

var profileCmd = &cobra.Command{
	Use:   "profile [path]",
	Short: "Set or show the Firefox profile",
	Long: `Set the Firefox profile directory userchromes are installed into, or print
the current one when no path is given.

The profile directory is listed on about:profiles in Firefox ("Root Directory").

Examples:
  nyoom profile ~/.mozilla/firefox/abcd1234.default-release
  nyoom profile`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		src, err := source.Parse("path:" + args[0])
		if err != nil {
			return fmt.Errorf("profile does not exist or is not a directory: %w", err)
		}
		cfg.Profile = src.(source.LocalPath).Path
		if err := cfg.Write(configPath); err != nil {
			return err
		}
	}

	if cfg.Profile == "" {
		fmt.Fprintln(cmd.OutOrStdout(), ui.ErrorStyle.UnsetBold().Render("[not set]"))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), cfg.Profile)
	return nil
}
