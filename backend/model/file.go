package model

import (
	"errors"
	"os"
	"sync"
	"time"
)

// FileRecord is the metadata kept for one uploaded file. The id is the
// on-disk filename minus its extension.
type FileRecord struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"originalName"`
	Filename     string    `json:"filename"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	OwnerID      string    `json:"ownerId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// storageDocument is the persisted shape of the index: {"files": [...]}.
type storageDocument struct {
	Files []FileRecord `json:"files"`
}

// FileStore holds the upload index in memory and persists it wholesale on
// every mutation, same model as UserStore.
type FileStore struct {
	mu    sync.RWMutex
	path  string
	files []FileRecord
}

func NewFileStore(path string) (*FileStore, error) {
	store := &FileStore{path: path}
	var doc storageDocument
	if err := loadJSON(path, &doc); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if err := saveJSON(path, storageDocument{Files: []FileRecord{}}); err != nil {
			return nil, err
		}
	}
	store.files = doc.Files
	return store, nil
}

// ListByOwner returns the owner's records in insertion order. The result
// is never nil so an empty listing serializes as [].
func (s *FileStore) ListByOwner(ownerID string) []FileRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]FileRecord, 0)
	for i := range s.files {
		if s.files[i].OwnerID == ownerID {
			records = append(records, s.files[i])
		}
	}
	return records
}

// Get returns the record matching both id and owner. A record owned by
// someone else reads the same as a missing one.
func (s *FileStore) Get(id string, ownerID string) (*FileRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.files {
		if s.files[i].ID == id && s.files[i].OwnerID == ownerID {
			record := s.files[i]
			return &record, true
		}
	}
	return nil, false
}

// Append adds a record and persists the collection.
func (s *FileStore) Append(record FileRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append(s.files, record)
	if err := saveJSON(s.path, storageDocument{Files: s.files}); err != nil {
		s.files = s.files[:len(s.files)-1]
		return err
	}
	return nil
}

// Remove deletes the record matching id and owner, reporting whether a
// record was removed.
func (s *FileStore) Remove(id string, ownerID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.files {
		if s.files[i].ID == id && s.files[i].OwnerID == ownerID {
			removed := append(append([]FileRecord{}, s.files[:i]...), s.files[i+1:]...)
			if err := saveJSON(s.path, storageDocument{Files: removed}); err != nil {
				return false, err
			}
			s.files = removed
			return true, nil
		}
	}
	return false, nil
}
