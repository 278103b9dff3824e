package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/arcanaland/cardlist/internal/catalog"
)

const op01 = `[
  {
    "id": "OP01-001",
    "code": "OP01-001",
    "name": "Roronoa Zoro",
    "type": "LEADER",
    "color": "Red",
    "family": "Supernovas/Straw Hat Crew",
    "attribute": {"name": "Slash"},
    "cost": null,
    "power": 5000,
    "images": {"large": "https://example.com/OP01-001.png"}
  },
  {
    "id": "OP01-001_p1",
    "code": "OP01-001",
    "name": "Roronoa Zoro",
    "type": "LEADER"
  },
  {
    "code": "OP01-002"
  },
  {
    "id": "OP01-004",
    "code": "OP01-004",
    "name": "Usopp",
    "color": "Red/Green",
    "cost": "2",
    "power": "-"
  }
]`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "OP01.json", op01)
	writeFile(t, dir, "broken.json", `{"not": "a list"`)
	writeFile(t, dir, "notes.txt", "ignored")

	cat := catalog.New()
	report, err := Directory(Options{
		InputDir:     dir,
		AltArtMarker: "_p",
		Logger:       zaptest.NewLogger(t),
	}, cat)
	require.NoError(t, err)

	require.Len(t, report.Files, 2)
	assert.Equal(t, 2, report.Converted())

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, filepath.Join(dir, "broken.json"), failed[0].Path)

	ok := report.Files[0]
	assert.Equal(t, filepath.Join(dir, "OP01.json"), ok.Path)
	assert.Equal(t, 2, ok.Converted)
	assert.Equal(t, 2, ok.Skipped)

	assert.Equal(t, []string{"OP01-001", "OP01-004"}, cat.IDs())

	zoro, found := cat.Get("OP01-001")
	require.True(t, found)
	assert.Equal(t, "Roronoa Zoro OP01-001", zoro.Name)
	assert.Equal(t, "Leader", zoro.Type)
	assert.Equal(t, 0, zoro.Cost)
	assert.Equal(t, 5000, zoro.Power)
	assert.Equal(t, []string{"Red"}, zoro.Colors)
	assert.Equal(t, []string{"Supernovas", "Straw Hat Crew"}, zoro.Subtype)
	assert.Equal(t, []string{"Slash"}, zoro.Attributes)
	assert.Equal(t, "https://example.com/OP01-001.png", zoro.Face.Front.Image)
	assert.Equal(t, zoro.Name, zoro.Face.Front.Name)

	usopp, found := cat.Get("OP01-004")
	require.True(t, found)
	assert.Equal(t, "Character", usopp.Type)
	assert.Equal(t, 2, usopp.Cost)
	assert.Equal(t, 0, usopp.Power)
	assert.Equal(t, []string{"Red", "Green"}, usopp.Colors)
	assert.Empty(t, usopp.Attributes)
	assert.Equal(t, "", usopp.Face.Front.Image)
}

func TestDirectoryIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "OP01.json", op01)
	writeFile(t, dir, "ST01.json", `[{"id": "ST01-001", "code": "ST01-001", "name": "Luffy", "type": "Leader"}]`)

	run := func() []byte {
		cat := catalog.New()
		_, err := Directory(Options{InputDir: dir, AltArtMarker: "_p"}, cat)
		require.NoError(t, err)
		data, err := cat.Marshal()
		require.NoError(t, err)
		return data
	}

	assert.Equal(t, run(), run())
}

func TestDirectoryMissing(t *testing.T) {
	_, err := Directory(Options{InputDir: filepath.Join(t.TempDir(), "missing")}, catalog.New())
	assert.Error(t, err)
}

func TestAltArtMarkerDisabled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "OP01.json", op01)

	entries, skipped, err := File(filepath.Join(dir, "OP01.json"), Options{})
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, "OP01-001_p1", entries[1].ID)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Character", capitalize("CHARACTER"))
	assert.Equal(t, "Event", capitalize("event"))
	assert.Equal(t, "", capitalize(""))
}
