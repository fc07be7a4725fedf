package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ryanccn/nyoom/internal/config"
	"github.com/ryanccn/nyoom/internal/source"
	"github.com/ryanccn/nyoom/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <source>",
	Short: "Add a new userchrome",
	Long: `Add a userchrome under a name.

Sources:
  github:owner/name[#ref]        GitHub repository (ref defaults to main)
  codeberg:owner/name[#ref]      Codeberg repository
  gitlab:group/name[#ref]        GitLab repository (nested groups allowed)
  url:https://.../theme.zip      archive URL (.zip, .tar, .tar.gz, .tar.xz, .tar.bz2, .tar.zst)
  path:/some/dir                 local directory

Bare URLs and existing directories are accepted too. URL and path sources are
stored in their canonical form.

Examples:
  nyoom add shyfox github:Naezr/ShyFox
  nyoom add mine ~/themes/mine`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	name, input := args[0], args[1]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := checkName(cfg, name); err != nil {
		return err
	}

	src, err := source.Parse(input)
	if err != nil {
		return err
	}

	uc := config.Userchrome{
		Name:   name,
		Source: source.Canonical(input, src),
	}

	ui.PrintUserchrome(cmd.OutOrStdout(), &uc, false, ui.Added)
	cfg.Add(uc)

	return cfg.Write(configPath)
}
