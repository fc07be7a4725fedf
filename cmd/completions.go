package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ryanccn/nyoom/internal/config"
	"github.com/ryanccn/nyoom/internal/presets"
)

// completeUserchromeNames completes the first argument with configured
// userchrome names
func completeUserchromeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		path = p
	}

	cfg, err := config.Read(path)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var names []string
	for _, uc := range cfg.Userchromes {
		names = append(names, uc.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeSwitchTargets is completeUserchromeNames plus "out"
func completeSwitchTargets(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names, directive := completeUserchromeNames(cmd, args, toComplete)
	if len(args) == 0 {
		names = append(names, uninstallName)
	}
	return names, directive
}

// completePresetNames completes bundled preset names
func completePresetNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return presets.Names(), cobra.ShellCompDirectiveNoFileComp
}
