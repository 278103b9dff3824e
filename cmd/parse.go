package cmd

import (
	"encoding/json"
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/arcanaland/cardlist/internal/card"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [text_file...]",
	Short: "Print the cards parsed from pasted text",
	Long: `Parse segments text pasted from a card database site into cards and prints
every field found, including life, counter and rules text, without touching
the card list. Use it to check how a paste will be read before merging it.

Examples:
  cardlist parse OP13
  cardlist parse --format yaml OP13 OP14`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format != "json" && format != "yaml" {
			return fmt.Errorf("unsupported format: %s (supported: json, yaml)", format)
		}

		p, err := newParser()
		if err != nil {
			return err
		}

		var cards []card.Card
		failed := 0
		for _, path := range args {
			parsed, err := p.ParseFile(path)
			if err != nil {
				logger.Warn("Failed to read text file", zap.String("path", path), zap.Error(err))
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %v\n", colorize.RedString("✗"), path, err)
				failed++
				continue
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Parsed %d cards from %s.\n", len(parsed), path)
			cards = append(cards, parsed...)
		}
		if failed == len(args) {
			return fmt.Errorf("no text file could be read")
		}
		if cards == nil {
			cards = []card.Card{}
		}

		out := cmd.OutOrStdout()
		if format == "yaml" {
			encoder := yaml.NewEncoder(out)
			encoder.SetIndent(2)
			if err := encoder.Encode(cards); err != nil {
				return fmt.Errorf("error encoding cards: %w", err)
			}
			return encoder.Close()
		}

		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(cards); err != nil {
			return fmt.Errorf("error encoding cards: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("format", "f", "json", "Output format (json or yaml)")
}
