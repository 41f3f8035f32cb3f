package batchfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadYAML(t *testing.T) {
	path := writeFile(t, "items.yaml", `
- id: post_1
  text: "Bullish!"
- id: post_2
  text: "Bearish sentiment here"
`)

	items, err := Read(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "post_1", items[0].ID)
	require.Equal(t, "Bullish!", items[0].Text)
}

func TestReadJSON(t *testing.T) {
	path := writeFile(t, "items.json", `[
		{"id": "a", "text": "to the moon"},
		{"id": "b", "text": "rug pull incoming"}
	]`)

	items, err := Read(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "rug pull incoming", items[1].Text)
}

func TestReadFillsMissingIDs(t *testing.T) {
	path := writeFile(t, "items.yaml", `
- text: "no id here"
- id: named
  text: "has an id"
`)

	items, err := Read(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "named", items[1].ID)

	_, err = uuid.Parse(items[0].ID)
	require.NoError(t, err, "generated id should be a uuid, got %q", items[0].ID)
}

func TestReadRejectsBadInput(t *testing.T) {
	t.Run("missing text", func(t *testing.T) {
		path := writeFile(t, "items.yaml", "- id: a\n- id: b\n  text: ok\n")
		_, err := Read(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "item 0")
	})

	t.Run("duplicate ids", func(t *testing.T) {
		path := writeFile(t, "items.yaml", "- id: a\n  text: one\n- id: a\n  text: two\n")
		_, err := Read(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), `reuses id "a"`)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "items.yaml", "")
		_, err := Read(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Read(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}
