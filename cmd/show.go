package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/cardlist/internal/card"
	"github.com/arcanaland/cardlist/internal/catalog"
)

const labelWidth = 12

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display a card from the card list",
	Long: `Show displays the stored fields of one card from the card list.

Examples:
  cardlist show OP13-001
  cardlist show --db ./CardList.json ST01-012`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardID := args[0]
		dbPath := flagOr(cmd, "db", cfg.OutputFile)

		cat, err := catalog.Load(dbPath)
		if err != nil {
			return err
		}

		e, ok := cat.Get(cardID)
		if !ok {
			return fmt.Errorf("card not found: %s", cardID)
		}

		// Get terminal width
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			width = 80 // Default if we can't get terminal width
		}

		displayCard(cmd.OutOrStdout(), e, width)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().String("db", "", "Card list file to read (default from config)")
}

// displayCard prints the card fields, wrapping long values to width
func displayCard(out io.Writer, e card.Entry, width int) {
	valueWidth := width - labelWidth - 4
	if valueWidth < 20 {
		valueWidth = 20
	}

	fields := []struct {
		label string
		value string
	}{
		{"Card:", e.Name},
		{"ID:", e.ID},
		{"Type:", e.Type},
		{"Cost:", fmt.Sprintf("%d", e.Cost)},
		{"Power:", fmt.Sprintf("%d", e.Power)},
		{"Colors:", strings.Join(e.Colors, " / ")},
		{"Subtype:", strings.Join(e.Subtype, " / ")},
		{"Attributes:", strings.Join(e.Attributes, " / ")},
		{"Image:", e.Face.Front.Image},
	}

	fmt.Fprintln(out)
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		for i, line := range wrapText(f.value, valueWidth) {
			label := ""
			if i == 0 {
				label = f.label
			}
			fmt.Fprintf(out, "  %s%s\n",
				colorize.CyanString("%-*s", labelWidth, label),
				colorize.HiWhiteString("%s", line))
		}
	}
	fmt.Fprintln(out)
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40 // Use a sensible default if width is too small
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
