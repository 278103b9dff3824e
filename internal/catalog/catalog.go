package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/arcanaland/cardlist/internal/card"
)

// Catalog is a card list keyed by card ID. Keys keep their insertion order,
// so saving the same content always produces the same bytes. Cards are held
// as encoded JSON, so fields a loaded card list carries beyond card.Entry
// survive until that card is overwritten.
type Catalog struct {
	entries *orderedmap.OrderedMap[string, json.RawMessage]
}

// New returns an empty catalog
func New() *Catalog {
	return &Catalog{entries: orderedmap.New[string, json.RawMessage]()}
}

// Load reads a card list file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading card list: %w", err)
	}

	c := New()
	if err := json.Unmarshal(data, c.entries); err != nil {
		return nil, fmt.Errorf("error parsing card list %s: %w", path, err)
	}

	// Every card must decode, so Get and Each never see a bad one
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		var e card.Entry
		if err := json.Unmarshal(pair.Value, &e); err != nil {
			return nil, fmt.Errorf("error parsing card %s in %s: %w", pair.Key, path, err)
		}
	}
	return c, nil
}

// LoadOrNew reads a card list file, returning an empty catalog when the
// file does not exist yet.
func LoadOrNew(path string) (*Catalog, error) {
	c, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	return c, err
}

// Len returns the number of cards
func (c *Catalog) Len() int {
	return c.entries.Len()
}

// Get looks up a card by ID
func (c *Catalog) Get(id string) (card.Entry, bool) {
	raw, ok := c.entries.Get(id)
	if !ok {
		return card.Entry{}, false
	}
	var e card.Entry
	_ = json.Unmarshal(raw, &e)
	return e, true
}

// Set stores e under its ID. An existing card keeps its position and is
// overwritten. Set reports whether the ID was new.
func (c *Catalog) Set(e card.Entry) bool {
	raw, err := encode(e)
	if err != nil {
		// card.Entry holds only strings, ints and string slices
		panic(err)
	}
	_, present := c.entries.Set(e.ID, raw)
	return !present
}

// Merge stores entries in order, later entries overwriting earlier ones.
// It returns how many IDs were added.
func (c *Catalog) Merge(entries []card.Entry) int {
	added := 0
	for _, e := range entries {
		if c.Set(e) {
			added++
		}
	}
	return added
}

// Each calls fn for every card in order, with the key it is stored under
func (c *Catalog) Each(fn func(id string, e card.Entry)) {
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		var e card.Entry
		_ = json.Unmarshal(pair.Value, &e)
		fn(pair.Key, e)
	}
}

// IDs returns the card IDs in order
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, c.Len())
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		ids = append(ids, pair.Key)
	}
	return ids
}

// Marshal encodes the catalog as a two-space indented JSON object. Strings
// are written as is, without escaping &, < and >.
func (c *Catalog) Marshal() ([]byte, error) {
	var raw bytes.Buffer
	raw.WriteByte('{')
	for pair, first := c.entries.Oldest(), true; pair != nil; pair, first = pair.Next(), false {
		if !first {
			raw.WriteByte(',')
		}
		key, err := encode(pair.Key)
		if err != nil {
			return nil, fmt.Errorf("error encoding card list: %w", err)
		}
		raw.Write(key)
		raw.WriteByte(':')
		raw.Write(pair.Value)
	}
	raw.WriteByte('}')

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("error encoding card list: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the catalog to path
func (c *Catalog) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing card list: %w", err)
	}
	return nil
}

// encode marshals v compactly without HTML escaping
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
