package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	nyoomerrors "github.com/ryanccn/nyoom/internal/errors"
	"github.com/ryanccn/nyoom/internal/ui"
)

var removeCmd = &cobra.Command{
	Use:               "remove <name>",
	Aliases:           []string{"rm"},
	Short:             "Remove a userchrome",
	Long:              `Remove a userchrome from the config. An installed copy in the profile is left in place; use 'nyoom switch out' to uninstall it.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeUserchromeNames,
	RunE:              runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	uc, ok := cfg.Remove(args[0])
	if !ok {
		return fmt.Errorf("%w: %q", nyoomerrors.ErrUserchromeNotFound, args[0])
	}

	ui.PrintUserchrome(cmd.OutOrStdout(), &uc, true, ui.Removed)
	return cfg.Write(configPath)
}
