package convert

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/arcanaland/cardlist/internal/card"
)

// Options controls a JSON source conversion
type Options struct {
	InputDir     string
	AltArtMarker string // IDs containing this are alternate arts and skipped
	DefaultType  string
	Logger       *zap.Logger
}

// FileResult is the outcome of converting one source file
type FileResult struct {
	Path      string
	Converted int
	Skipped   int
	Err       error
}

// Report lists the outcome of every source file in processing order
type Report struct {
	Files []FileResult
}

// Converted returns the number of cards converted across all files
func (r Report) Converted() int {
	total := 0
	for _, f := range r.Files {
		total += f.Converted
	}
	return total
}

// Failed returns the files that could not be converted
func (r Report) Failed() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}

// Sink receives converted entries
type Sink interface {
	Set(e card.Entry) bool
}

// Directory converts every *.json file in opts.InputDir, in name order,
// storing the entries in sink. A file that cannot be read or decoded is
// recorded in the report and the remaining files are still converted.
func Directory(opts Options, sink Sink) (Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if _, err := os.Stat(opts.InputDir); err != nil {
		return Report{}, fmt.Errorf("input directory not found: %s", opts.InputDir)
	}
	paths, err := filepath.Glob(filepath.Join(opts.InputDir, "*.json"))
	if err != nil {
		return Report{}, fmt.Errorf("error listing %s: %w", opts.InputDir, err)
	}

	var report Report
	for _, path := range paths {
		result := FileResult{Path: path}

		entries, skipped, err := File(path, opts)
		if err != nil {
			logger.Warn("Failed to convert source file", zap.String("path", path), zap.Error(err))
			result.Err = err
			report.Files = append(report.Files, result)
			continue
		}

		for _, e := range entries {
			sink.Set(e)
		}
		result.Converted = len(entries)
		result.Skipped = skipped
		logger.Debug("Converted source file",
			zap.String("path", path),
			zap.Int("converted", result.Converted),
			zap.Int("skipped", result.Skipped))
		report.Files = append(report.Files, result)
	}

	return report, nil
}

// File converts one JSON source file. It returns the entries in file order
// and how many cards were skipped.
func File(path string, opts Options) ([]card.Entry, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("error reading source file: %w", err)
	}

	var cards []sourceCard
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, 0, fmt.Errorf("error decoding source file: %w", err)
	}

	var entries []card.Entry
	skipped := 0
	for _, sc := range cards {
		e, ok := sc.entry(opts)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	return entries, skipped, nil
}

func (sc sourceCard) entry(opts Options) (card.Entry, bool) {
	if sc.ID == "" || sc.Code == "" {
		return card.Entry{}, false
	}
	if opts.AltArtMarker != "" && strings.Contains(sc.ID, opts.AltArtMarker) {
		return card.Entry{}, false
	}

	cardType := card.DefaultType
	if opts.DefaultType != "" {
		cardType = opts.DefaultType
	}
	if sc.Type != "" {
		cardType = capitalize(sc.Type)
	}

	name := sc.Name
	if name == "" {
		name = "Unknown"
	}
	name = name + " " + sc.ID

	image := ""
	if sc.Images != nil {
		image = sc.Images.Large
	}

	e := card.NewEntry(sc.ID, name, cardType, int(sc.Cost), int(sc.Power), image)
	if sc.Color != "" {
		e.Colors = strings.Split(sc.Color, "/")
	}
	if sc.Family != "" {
		e.Subtype = strings.Split(sc.Family, "/")
	}
	if sc.Attribute != nil && sc.Attribute.Name != "" {
		e.Attributes = []string{sc.Attribute.Name}
	}
	return e, true
}

// capitalize upper-cases the first letter and lower-cases the rest
func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
