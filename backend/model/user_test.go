package model

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestUserStore(t *testing.T) (*UserStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	store, err := NewUserStore(path)
	assert.NoError(t, err)
	return store, path
}

func TestUserStore_CreateAndFind(t *testing.T) {
	store, _ := newTestUserStore(t)

	user, err := store.Create("alice@example.com", "hash1")
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())

	found, ok := store.FindByEmail("alice@example.com")
	assert.True(t, ok)
	assert.Equal(t, user.ID, found.ID)

	_, ok = store.FindByEmail("bob@example.com")
	assert.False(t, ok)
}

func TestUserStore_DuplicateEmail(t *testing.T) {
	store, _ := newTestUserStore(t)

	_, err := store.Create("alice@example.com", "hash1")
	assert.NoError(t, err)

	_, err = store.Create("alice@example.com", "hash2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserStore_EmailCaseSensitive(t *testing.T) {
	store, _ := newTestUserStore(t)

	_, err := store.Create("Alice@example.com", "hash1")
	assert.NoError(t, err)

	_, ok := store.FindByEmail("alice@example.com")
	assert.False(t, ok)

	_, err = store.Create("alice@example.com", "hash2")
	assert.NoError(t, err)
}

func TestUserStore_PersistsAcrossReload(t *testing.T) {
	store, path := newTestUserStore(t)

	created, err := store.Create("alice@example.com", "hash1")
	assert.NoError(t, err)

	reloaded, err := NewUserStore(path)
	assert.NoError(t, err)
	found, ok := reloaded.FindByEmail("alice@example.com")
	assert.True(t, ok)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "hash1", found.PasswordHash)
}

func TestUserStore_DocumentIsBareArray(t *testing.T) {
	store, path := newTestUserStore(t)

	_, err := store.Create("alice@example.com", "hash1")
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	var users []User
	assert.NoError(t, json.Unmarshal(data, &users))
	assert.Len(t, users, 1)
}

func TestUserStore_SeedsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	_, err := NewUserStore(path)
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}
