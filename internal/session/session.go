// Package session tracks which client is logged in to the menu.
package session

import (
	"sync"

	"github.com/dmitrijs2005/passvault/internal/models"
	"github.com/google/uuid"
)

// Session holds the authenticated client id between menu actions. The zero
// value is logged out. It is safe for concurrent use.
type Session struct {
	mu     sync.RWMutex
	client models.ClientID
	active bool
	id     string
}

// New returns a logged-out session.
func New() *Session {
	return &Session{}
}

// Set marks id as logged in and starts a new correlation id.
func (s *Session) Set(id models.ClientID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = id
	s.active = true
	s.id = uuid.NewString()
}

// Clear logs out.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = 0
	s.active = false
	s.id = ""
}

// Current returns the logged-in client, if any.
func (s *Session) Current() (models.ClientID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client, s.active
}

// ID returns the correlation id of the current login, or "" when logged out.
func (s *Session) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}
