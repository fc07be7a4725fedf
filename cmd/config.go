package cmd

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage userchrome-linked prefs",
	Long: `Manage the Firefox prefs attached to a userchrome. They are written to the
nyoom-managed block of user.js when the userchrome is switched to.`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
