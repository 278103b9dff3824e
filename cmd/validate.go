package cmd

import (
	"fmt"

	"github.com/arcanaland/cardlist/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a card list file",
	Long: `Validate checks that every card in a card list has the expected shape:
a matching ID key, a name, and a front face consistent with the card fields.
Cards with unusual IDs, types, colors or images are reported as warnings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.OutputFile
		if len(args) == 1 {
			path = args[0]
		}

		p, err := newParser()
		if err != nil {
			return err
		}

		// Create validator and run validation
		v := validator.NewValidator(path, p, cfg.AltArtMarker)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Card list '%s' is valid.\n", path)
		} else {
			fmt.Fprintf(out, "❌ Card list '%s' has %d validation errors:\n", path, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
