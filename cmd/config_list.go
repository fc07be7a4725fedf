package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryanccn/nyoom/internal/ui"
)

var configListCmd = &cobra.Command{
	Use:               "list <name>",
	Aliases:           []string{"ls"},
	Short:             "List a userchrome's prefs",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeUserchromeNames,
	RunE:              runConfigList,
}

func init() {
	configCmd.AddCommand(configListCmd)
}

func runConfigList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	uc, err := findUserchrome(cfg, args[0])
	if err != nil {
		return err
	}

	for _, p := range uc.Prefs {
		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatPref(p))
	}
	return nil
}
