package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/cardlist/internal/card"
	"github.com/arcanaland/cardlist/internal/catalog"
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge [text_file...]",
	Short: "Add cards parsed from pasted text to a card list",
	Long: `Merge parses text pasted from a card database site and adds the cards to
an existing card list. Cards already in the list are overwritten, and files
are merged in the order given, so a later file wins over an earlier one.

Examples:
  cardlist merge OP13 OP14
  cardlist merge --db ./CardList.json OP13`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := flagOr(cmd, "db", cfg.OutputFile)

		p, err := newParser()
		if err != nil {
			return err
		}

		cat, err := catalog.LoadOrNew(dbPath)
		if err != nil {
			return err
		}
		startLen := cat.Len()

		out := cmd.OutOrStdout()
		failed := 0
		for _, path := range args {
			cards, err := p.ParseFile(path)
			if err != nil {
				logger.Warn("Failed to read text file", zap.String("path", path), zap.Error(err))
				fmt.Fprintf(out, "%s %s: %v\n", colorize.RedString("✗"), path, err)
				failed++
				continue
			}

			entries := make([]card.Entry, 0, len(cards))
			for _, c := range cards {
				entries = append(entries, c.Entry(cfg.ImageURL(c.ID)))
			}
			added := cat.Merge(entries)

			logger.Debug("Merged text file",
				zap.String("path", path),
				zap.Int("parsed", len(cards)),
				zap.Int("added", added))
			fmt.Fprintf(out, "Adding %d unique cards from %s.\n", len(cards), path)
		}

		if failed == len(args) {
			return fmt.Errorf("no text file could be read")
		}

		endLen := cat.Len()
		fmt.Fprintf(out, "Total cards increased from %d to %d (+%d)\n", startLen, endLen, endLen-startLen)

		if err := cat.Save(dbPath); err != nil {
			return err
		}
		fmt.Fprintln(out, colorize.GreenString("Card list updated: %s", dbPath))
		if failed > 0 {
			fmt.Fprintf(out, "%s\n", colorize.YellowString("%d of %d files could not be read", failed, len(args)))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().String("db", "", "Card list file to update (default from config)")
}
