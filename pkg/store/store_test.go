package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestWriteThenRead(t *testing.T) {
	s, err := NewDocumentStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write("records", []record{{Name: "a", Count: 1}, {Name: "b", Count: 2}}))

	var got []record
	require.NoError(t, s.Read("records", &got))
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, 2, got[1].Count)
}

func TestReadMissingCollectionLeavesValueUntouched(t *testing.T) {
	s, err := NewDocumentStore(t.TempDir())
	require.NoError(t, err)

	got := record{Name: "default"}
	require.NoError(t, s.Read("missing", &got))
	assert.Equal(t, "default", got.Name)
}

func TestWriteReplacesCollection(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDocumentStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Write("records", []record{{Name: "old"}}))
	require.NoError(t, s.Write("records", []record{{Name: "new"}}))

	var got []record
	require.NoError(t, s.Read("records", &got))
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Name)

	// Временный файл не остается после записи
	_, err = os.Stat(filepath.Join(dir, "records.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestReadCorruptCollection(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDocumentStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "records.json"), []byte("{not json"), 0o644))

	var got []record
	assert.Error(t, s.Read("records", &got))
}
