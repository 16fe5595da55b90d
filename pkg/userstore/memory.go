package userstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/kanzfinance/kanz-middleware/pkg/user"
)

type memoryStore struct {
	mu    sync.RWMutex
	users map[string]*user.User
}

// NewMemoryStore creates an in-process user store. State is lost on restart.
func NewMemoryStore() *memoryStore {
	return &memoryStore{users: make(map[string]*user.User)}
}

func cloneUser(u *user.User) *user.User {
	c := *u
	c.Wallets = slices.Clone(u.Wallets)
	return &c
}

func (s *memoryStore) GetUser(_ context.Context, userID string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	usr, ok := s.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return cloneUser(usr), nil
}

func (s *memoryStore) SyncUser(_ context.Context, userID string, wallets []user.Wallet) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	usr, ok := s.users[userID]
	if !ok {
		usr = user.New(userID, nil)
		s.users[userID] = usr
	}
	usr.Wallets = user.MergeWallets(usr.Wallets, wallets)
	usr.UpdatedAt = time.Now().UTC()
	return cloneUser(usr), nil
}
