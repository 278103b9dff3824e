package cmd

import (
	"fmt"

	"github.com/arcanaland/cardlist/internal/config"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Init writes the default configuration to the config file so the input
directory, card list path and image URL settings can be edited. An existing
config file is left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefaultConfig(configPath)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", path)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
