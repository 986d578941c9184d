package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
)

// ErrTokenNotFound is returned when a token was never issued or has been
// revoked.
var ErrTokenNotFound = errors.New("session token not found")

// Store issues and resolves opaque session tokens. A token stays valid until
// it is revoked or the backing store is cleared.
type Store interface {
	Issue(ctx context.Context, identity model.EmployeeIdentity) (string, error)
	Resolve(ctx context.Context, token string) (*model.EmployeeIdentity, error)
	Revoke(ctx context.Context, token string) error
}

// memoryStore keeps sessions in process memory. A restart logs everyone out,
// which is acceptable for a single-instance deployment.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]model.EmployeeIdentity
}

func NewMemoryStore() Store {
	return &memoryStore{
		sessions: make(map[string]model.EmployeeIdentity),
	}
}

func (s *memoryStore) Issue(_ context.Context, identity model.EmployeeIdentity) (string, error) {
	token := uuid.New().String()

	s.mu.Lock()
	s.sessions[token] = identity
	s.mu.Unlock()

	return token, nil
}

func (s *memoryStore) Resolve(_ context.Context, token string) (*model.EmployeeIdentity, error) {
	s.mu.RLock()
	identity, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrTokenNotFound
	}
	return &identity, nil
}

func (s *memoryStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
