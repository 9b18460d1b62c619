// Package memory provides an in-process SessionStore for tests and
// single-context deployments without Redis.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Nowell222/green-path-ai/internal/core/domain"
)

// SessionStore keeps the serialized profile in memory. It stores the raw
// JSON payload rather than the struct so that load behaves exactly like the
// durable stores, including the treatment of undecodable data.
type SessionStore struct {
	mu   sync.Mutex
	data []byte
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Seed replaces the raw stored payload. Useful for preparing rehydration
// scenarios, including deliberately malformed ones.
func (s *SessionStore) Seed(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}

func (s *SessionStore) Save(_ context.Context, profile *domain.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

func (s *SessionStore) Load(_ context.Context) *domain.UserProfile {
	s.mu.Lock()
	data := s.data
	s.mu.Unlock()
	if data == nil {
		return nil
	}
	var profile domain.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil
	}
	return &profile
}

func (s *SessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}
