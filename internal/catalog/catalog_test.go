package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardlist/internal/card"
)

func entry(id, name string) card.Entry {
	return card.NewEntry(id, name, "Character", 1, 1000, "")
}

func TestMergeLastWriteWins(t *testing.T) {
	c := New()
	assert.Equal(t, 2, c.Merge([]card.Entry{entry("OP01-001", "Zoro"), entry("OP01-002", "Nami")}))
	assert.Equal(t, 1, c.Merge([]card.Entry{entry("OP01-002", "Nami (Reprint)"), entry("OP01-003", "Usopp")}))

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"OP01-001", "OP01-002", "OP01-003"}, c.IDs())

	got, ok := c.Get("OP01-002")
	require.True(t, ok)
	assert.Equal(t, "Nami (Reprint)", got.Name)
}

func TestMarshalShape(t *testing.T) {
	c := New()
	c.Set(card.NewEntry("ST01-001", "Monkey.D.Luffy ST01-001", "Leader", 0, 5000, "https://example.com/ST01-001.png"))

	data, err := c.Marshal()
	require.NoError(t, err)

	want := `{
  "ST01-001": {
    "id": "ST01-001",
    "face": {
      "front": {
        "name": "Monkey.D.Luffy ST01-001",
        "type": "Leader",
        "cost": 0,
        "image": "https://example.com/ST01-001.png"
      }
    },
    "name": "Monkey.D.Luffy ST01-001",
    "type": "Leader",
    "cost": 0,
    "power": 5000,
    "colors": [],
    "subtype": [],
    "attributes": []
  }
}`
	assert.Equal(t, want, string(data))
}

func TestSaveLoadKeepsOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CardList.json")

	c := New()
	for _, id := range []string{"OP02-010", "OP01-001", "ST01-005"} {
		c.Set(entry(id, "Card "+id))
	}
	require.NoError(t, c.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c.IDs(), loaded.IDs())

	first, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, loaded.Save(path))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadOrNew(t *testing.T) {
	c, err := LoadOrNew(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("[1, 2]"), 0644))
	_, err = LoadOrNew(bad)
	assert.Error(t, err)
}

func TestSaveToMissingDirectory(t *testing.T) {
	err := New().Save(filepath.Join(t.TempDir(), "no", "such", "dir", "CardList.json"))
	assert.Error(t, err)
}

func TestMarshalKeepsSpecialCharacters(t *testing.T) {
	c := New()
	c.Set(card.NewEntry("OP01-001", "Luffy & Ace <Brothers> Zoro·é", "Character", 2, 3000, "https://x/a.png?x=1&y=2"))

	data, err := c.Marshal()
	require.NoError(t, err)

	assert.Contains(t, string(data), `"name": "Luffy & Ace <Brothers> Zoro·é"`)
	assert.Contains(t, string(data), `"image": "https://x/a.png?x=1&y=2"`)
	assert.NotContains(t, string(data), `\u0026`)
	assert.NotContains(t, string(data), `\u003c`)
	assert.NotContains(t, string(data), `\u003e`)
}

func TestLoadKeepsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CardList.json")
	content := `{
  "OP01-001": {
    "id": "OP01-001",
    "face": {
      "front": {"name": "Zoro", "type": "Leader", "cost": 0, "image": ""},
      "back": {"name": "Zoro (Back)"}
    },
    "name": "Zoro",
    "type": "Leader",
    "cost": 0,
    "power": 5000,
    "colors": ["Red"],
    "subtype": [],
    "attributes": [],
    "text": "hand-written note"
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	c.Set(entry("OP01-002", "Nami"))
	require.NoError(t, c.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"text": "hand-written note"`)
	assert.Contains(t, string(data), `"name": "Zoro (Back)"`)

	zoro, ok := c.Get("OP01-001")
	require.True(t, ok)
	assert.Equal(t, 5000, zoro.Power)

	// Overwriting a card replaces it whole
	c.Set(entry("OP01-001", "Zoro"))
	data, err = c.Marshal()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hand-written note")
}

func TestLoadRejectsMalformedCard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CardList.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"OP01-001": {"cost": "three"}}`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
