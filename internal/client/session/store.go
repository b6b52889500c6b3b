// Package session holds the per-process session cache: the last-known share
// code and the last fetched user record. Values live only for the process
// lifetime; nothing is persisted.
package session

import (
	"sync"

	"github.com/wolfdeveloper/wolfdevlovers/internal/client/models"
)

// Store is the in-memory session cache. It is the only state shared across
// workflow runs; access is serialized, single writer per code.
type Store struct {
	mu   sync.Mutex
	user *models.User
	code string
}

func NewStore() *Store {
	return &Store{}
}

// GetUser returns the cached user record, or nil if none was cached.
func (s *Store) GetUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// SetUser replaces the cached user record. Passing nil clears the cache.
func (s *Store) SetUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// GetCode returns the last stored share code, or "".
func (s *Store) GetCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.code
}

// SetCode stores a share code for later lookups.
func (s *Store) SetCode(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = code
}
