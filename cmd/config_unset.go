package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ryanccn/nyoom/internal/logging"
)

var configUnsetCmd = &cobra.Command{
	Use:               "unset <name> <key>",
	Short:             "Remove a pref from a userchrome",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeUserchromeNames,
	RunE:              runConfigUnset,
}

func init() {
	configCmd.AddCommand(configUnsetCmd)
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	name, key := args[0], args[1]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	uc, err := findUserchrome(cfg, name)
	if err != nil {
		return err
	}

	if !uc.UnsetPref(key) {
		logging.Log.WithField("key", key).Info("pref was not set")
	}

	return cfg.Write(configPath)
}
