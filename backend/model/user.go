package model

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrDuplicateEmail = errors.New("email already registered")

// User is a credential record. Created on register, immutable afterwards,
// never deleted.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicUser is the view of a user that may appear in API responses.
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email}
}

// UserStore holds the user collection in memory and persists it as a bare
// JSON array, rewritten wholesale on every mutation.
type UserStore struct {
	mu    sync.RWMutex
	path  string
	users []User
}

func NewUserStore(path string) (*UserStore, error) {
	store := &UserStore{path: path}
	if err := loadJSON(path, &store.users); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if err := saveJSON(path, []User{}); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// FindByEmail looks up a user by exact (case-sensitive) email.
func (s *UserStore) FindByEmail(email string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Email == email {
			user := s.users[i]
			return &user, true
		}
	}
	return nil, false
}

// Create appends a new user and persists the collection. Fails with
// ErrDuplicateEmail when the email is already present.
func (s *UserStore) Create(email string, passwordHash string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	user := User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.users = append(s.users, user)
	if err := saveJSON(s.path, s.users); err != nil {
		s.users = s.users[:len(s.users)-1]
		return nil, err
	}
	return &user, nil
}
