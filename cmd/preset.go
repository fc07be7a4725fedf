package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ryanccn/nyoom/internal/presets"
	"github.com/ryanccn/nyoom/internal/ui"
)

var presetCmd = &cobra.Command{
	Use:   "preset [name]",
	Short: "Import a preset as a userchrome or list presets",
	Long: `Without a name, list the bundled presets. With a name, add that preset to the
config as a userchrome of the same name.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completePresetNames,
	RunE:              runPreset,
}

func init() {
	rootCmd.AddCommand(presetCmd)
}

func runPreset(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		all, err := presets.All()
		if err != nil {
			return err
		}
		for i := range all {
			ui.PrintUserchrome(out, &all[i], true, ui.Normal)
		}
		return nil
	}

	name := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := checkName(cfg, name); err != nil {
		return err
	}

	preset, err := presets.Get(name)
	if err != nil {
		return err
	}

	ui.PrintUserchrome(out, &preset, false, ui.Added)
	cfg.Add(preset)

	return cfg.Write(configPath)
}
