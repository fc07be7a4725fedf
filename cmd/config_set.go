package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryanccn/nyoom/internal/config"
	"github.com/ryanccn/nyoom/internal/ui"
)

var configSetRaw bool

var configSetCmd = &cobra.Command{
	Use:   "set <name> <key> <value>",
	Short: "Set a pref on a userchrome",
	Long: `Set a Firefox pref on a userchrome, replacing any existing value for the key.

Values are written as strings unless --raw is given, in which case they are
written verbatim (use this for booleans and numbers).

Examples:
  nyoom config set shyfox browser.uidensity 1 --raw
  nyoom config set shyfox font.name.serif.x-western "Iosevka"`,
	Args:              cobra.ExactArgs(3),
	ValidArgsFunction: completeUserchromeNames,
	RunE:              runConfigSet,
}

func init() {
	configSetCmd.Flags().BoolVarP(&configSetRaw, "raw", "r", false, "write the value verbatim instead of as a string")
	configCmd.AddCommand(configSetCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	name, key, value := args[0], args[1], args[2]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	uc, err := findUserchrome(cfg, name)
	if err != nil {
		return err
	}

	uc.SetPref(key, value, configSetRaw)
	if err := cfg.Write(configPath); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.FormatPref(config.Pref{Key: key, Value: value, Raw: configSetRaw}))
	return nil
}
