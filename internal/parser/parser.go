package parser

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/arcanaland/cardlist/internal/card"
)

// DefaultIDPattern matches the printing identifiers of the supported sets
const DefaultIDPattern = `OP\d+-\d+|EB\d+-\d+|PRB\d+-\d+|ST\d+-\d+|P-\d+`

const (
	fieldSeparator = "•"
	listSeparator  = "/"
	illustrated    = "Illustrated by"
	minBlockLines  = 3
)

var counterReplacer = strings.NewReplacer("+", "", "Counter", "")

// Parser segments pasted card text into card records
type Parser struct {
	find        *regexp.Regexp
	exact       *regexp.Regexp
	defaultType string
	logger      *zap.Logger
}

// Option configures a Parser
type Option func(*Parser)

// WithLogger sets the logger used to report skipped blocks
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithDefaultType sets the type used when a type line names none
func WithDefaultType(cardType string) Option {
	return func(p *Parser) {
		if cardType != "" {
			p.defaultType = cardType
		}
	}
}

// New creates a parser for identifiers matching pattern. An empty pattern
// selects DefaultIDPattern.
func New(pattern string, opts ...Option) (*Parser, error) {
	if pattern == "" {
		pattern = DefaultIDPattern
	}
	find, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid identifier pattern: %w", err)
	}
	exact, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("invalid identifier pattern: %w", err)
	}

	p := &Parser{
		find:        find,
		exact:       exact,
		defaultType: card.DefaultType,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// MatchID reports whether id is a complete identifier
func (p *Parser) MatchID(id string) bool {
	return p.exact.MatchString(id)
}

// Block is the span of text attributed to one identifier match
type Block struct {
	Start int
	End   int
	Text  string
}

// Blocks locates every identifier in text and returns the span attributed
// to each, in document order.
func (p *Parser) Blocks(text string) []Block {
	matches := p.find.FindAllStringIndex(text, -1)
	blocks := make([]Block, 0, len(matches))

	for i, m := range matches {
		prevEnd := 0
		if i > 0 {
			prevEnd = matches[i-1][1]
		}
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		start := BlockStart(text, m[0], prevEnd)
		blocks = append(blocks, Block{Start: start, End: end, Text: text[start:end]})
	}
	return blocks
}

// BlockStart returns where the block holding the identifier at idStart
// begins: just after the nearest preceding blank line, but never before
// prevEnd, the end of the previous identifier.
func BlockStart(text string, idStart, prevEnd int) int {
	start := idStart
	for start > 0 {
		if start >= 2 && text[start-2:start] == "\n\n" {
			break
		}
		start--
	}
	if start < prevEnd {
		start = prevEnd
	}
	return start
}

// Parse extracts one record per recognized block. Malformed blocks are
// skipped and later duplicates of an identifier are dropped.
func (p *Parser) Parse(text string) []card.Card {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var cards []card.Card
	seen := make(map[string]bool)

	for _, b := range p.Blocks(text) {
		c, ok := p.parseBlock(b.Text)
		if !ok {
			continue
		}
		if seen[c.ID] {
			p.logger.Debug("Skipping duplicate identifier", zap.String("id", c.ID))
			continue
		}
		seen[c.ID] = true
		cards = append(cards, c)
	}
	return cards
}

// ParseFile reads and parses a pasted text file
func (p *Parser) ParseFile(path string) ([]card.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return p.Parse(string(data)), nil
}

func (p *Parser) parseBlock(block string) (card.Card, bool) {
	lines := splitLines(block)
	if len(lines) < minBlockLines {
		p.logger.Debug("Skipping short block", zap.Int("lines", len(lines)))
		return card.Card{}, false
	}
	if !p.MatchID(lines[1]) {
		p.logger.Debug("Skipping block without identifier line", zap.String("line", lines[1]))
		return card.Card{}, false
	}

	c := card.Card{
		ID:   lines[1],
		Name: lines[0],
	}
	c.Type, c.Colors, c.Cost, c.Life = parseTypeLine(lines[2], p.defaultType)

	statEnd := 2
	if len(lines) > 3 && strings.Contains(lines[3], "Power") {
		c.Power, c.Attributes, c.Counter = parsePowerLine(lines[3])
		statEnd = 3
	}

	illus := -1
	for i, line := range lines {
		if strings.HasPrefix(line, illustrated) {
			illus = i
			break
		}
	}
	if illus <= 0 {
		return c, true
	}

	textEnd := illus
	if family := illus - 1; family > statEnd && isSubtypeLine(lines[family]) {
		c.Subtype = splitList(lines[family])
		textEnd = family
	}
	if statEnd+1 < textEnd {
		c.Text = strings.Join(lines[statEnd+1:textEnd], "\n")
	}
	return c, true
}

// parseTypeLine reads "Type • Color/Color • N Cost" or "... • N Life"
func parseTypeLine(line, fallback string) (cardType string, colors []string, cost, life *int) {
	parts := strings.Split(line, fieldSeparator)

	cardType = strings.TrimSpace(parts[0])
	if cardType == "" {
		cardType = fallback
	}
	if len(parts) >= 2 {
		colors = splitList(parts[1])
	}
	if len(parts) >= 3 {
		desc := strings.TrimSpace(parts[2])
		switch {
		case strings.Contains(desc, "Cost"):
			cost = atoi(strings.ReplaceAll(desc, "Cost", ""))
		case strings.Contains(desc, "Life"):
			life = atoi(strings.ReplaceAll(desc, "Life", ""))
		}
	}
	return cardType, colors, cost, life
}

// parsePowerLine reads "N Power • Attr/Attr • +N Counter"
func parsePowerLine(line string) (power *int, attributes []string, counter *int) {
	parts := strings.Split(line, fieldSeparator)

	power = atoi(strings.ReplaceAll(parts[0], "Power", ""))
	if len(parts) >= 2 {
		attributes = splitList(parts[1])
	}
	if len(parts) >= 3 {
		counter = atoi(counterReplacer.Replace(parts[2]))
	}
	return power, attributes, counter
}

func isSubtypeLine(line string) bool {
	return line != "" && !strings.HasPrefix(line, "[") && !strings.Contains(line, "Power")
}

func splitLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, listSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// atoi returns nil when s is not an integer
func atoi(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}
