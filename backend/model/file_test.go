package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storage.json")
	store, err := NewFileStore(path)
	assert.NoError(t, err)
	return store, path
}

func testRecord(id string, ownerID string) FileRecord {
	return FileRecord{
		ID:           id,
		OriginalName: id + ".png",
		Filename:     id + ".png",
		MimeType:     "image/png",
		Size:         42,
		URL:          "http://localhost:4000/uploads/" + id + ".png",
		OwnerID:      ownerID,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestFileStore_ListByOwnerInsertionOrder(t *testing.T) {
	store, _ := newTestFileStore(t)

	for i := 0; i < 3; i++ {
		assert.NoError(t, store.Append(testRecord(fmt.Sprintf("f%d", i), "owner-a")))
	}
	assert.NoError(t, store.Append(testRecord("other", "owner-b")))

	records := store.ListByOwner("owner-a")
	assert.Len(t, records, 3)
	assert.Equal(t, "f0", records[0].ID)
	assert.Equal(t, "f1", records[1].ID)
	assert.Equal(t, "f2", records[2].ID)
}

func TestFileStore_ListByOwnerEmpty(t *testing.T) {
	store, _ := newTestFileStore(t)

	records := store.ListByOwner("nobody")
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestFileStore_GetRequiresOwnerMatch(t *testing.T) {
	store, _ := newTestFileStore(t)
	assert.NoError(t, store.Append(testRecord("f1", "owner-a")))

	_, ok := store.Get("f1", "owner-a")
	assert.True(t, ok)

	// A different owner's lookup reads the same as a missing id.
	_, ok = store.Get("f1", "owner-b")
	assert.False(t, ok)
	_, ok = store.Get("missing", "owner-a")
	assert.False(t, ok)
}

func TestFileStore_Remove(t *testing.T) {
	store, _ := newTestFileStore(t)
	assert.NoError(t, store.Append(testRecord("f1", "owner-a")))

	removed, err := store.Remove("f1", "owner-b")
	assert.NoError(t, err)
	assert.False(t, removed)

	removed, err = store.Remove("f1", "owner-a")
	assert.NoError(t, err)
	assert.True(t, removed)

	_, ok := store.Get("f1", "owner-a")
	assert.False(t, ok)
}

func TestFileStore_PersistsAcrossReload(t *testing.T) {
	store, path := newTestFileStore(t)
	assert.NoError(t, store.Append(testRecord("f1", "owner-a")))
	assert.NoError(t, store.Append(testRecord("f2", "owner-a")))

	reloaded, err := NewFileStore(path)
	assert.NoError(t, err)
	records := reloaded.ListByOwner("owner-a")
	assert.Len(t, records, 2)
	assert.Equal(t, "f1", records[0].ID)
}

func TestFileStore_DocumentLayout(t *testing.T) {
	store, path := newTestFileStore(t)
	assert.NoError(t, store.Append(testRecord("f1", "owner-a")))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	var doc map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "files")
}
