package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/cardlist/internal/catalog"
	"github.com/arcanaland/cardlist/internal/convert"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Build a card list from a directory of JSON card dumps",
	Long: `Convert reads every *.json file in the input directory, each holding an
array of card objects, and writes a fresh card list keyed by card ID.

Cards without an id or code are skipped, as are alternate arts (IDs
containing the configured alt_art_marker). A file that cannot be read or
decoded is reported and the remaining files are still converted.

Examples:
  cardlist convert
  cardlist convert --input ./cards/en --output ./CardList.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputDir := flagOr(cmd, "input", cfg.InputDir)
		outputFile := flagOr(cmd, "output", cfg.OutputFile)

		cat := catalog.New()
		report, err := convert.Directory(convert.Options{
			InputDir:     inputDir,
			AltArtMarker: cfg.AltArtMarker,
			DefaultType:  cfg.DefaultType,
			Logger:       logger,
		}, cat)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, f := range report.Files {
			if f.Err != nil {
				fmt.Fprintf(out, "%s %s: %v\n", colorize.RedString("✗"), f.Path, f.Err)
				continue
			}
			fmt.Fprintf(out, "%s %s: %d converted, %d skipped\n",
				colorize.GreenString("✓"), f.Path, f.Converted, f.Skipped)
		}

		if err := cat.Save(outputFile); err != nil {
			return err
		}
		logger.Info("Card list written",
			zap.String("path", outputFile),
			zap.Int("cards", cat.Len()),
			zap.Int("failed_files", len(report.Failed())))

		fmt.Fprintf(out, "Successfully converted %d cards to %s\n", cat.Len(), outputFile)
		if failed := report.Failed(); len(failed) > 0 {
			fmt.Fprintf(out, "%s\n", colorize.YellowString("%d of %d files could not be converted", len(failed), len(report.Files)))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("input", "i", "", "Directory of JSON card dumps (default from config)")
	convertCmd.Flags().StringP("output", "o", "", "Card list file to write (default from config)")
}
