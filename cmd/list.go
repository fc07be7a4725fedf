package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ryanccn/nyoom/internal/config"
	"github.com/ryanccn/nyoom/internal/ui"
)

var listOutput string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List userchromes",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "text", "output format (text, json, yaml)")
	listCmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(
		[]string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp))
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	userchromes := cfg.Userchromes
	if userchromes == nil {
		userchromes = []config.Userchrome{}
	}

	switch listOutput {
	case "text":
		for i := range userchromes {
			ui.PrintUserchrome(out, &userchromes[i], false, ui.Normal)
		}
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(userchromes)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(userchromes); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (available: text, json, yaml)", listOutput)
	}

	return nil
}
