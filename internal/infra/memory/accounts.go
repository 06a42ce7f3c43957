package memory

import (
	"context"
	"sort"
	"sync"

	"social-scheduler/internal/domain/accounts"
)

// AccountStore serializes every guarded insert behind one mutex, which is enough for a
// single process.
type AccountStore struct {
	mu     sync.Mutex
	byUser map[uint][]accounts.SocialAccount
}

func NewAccountStore() *AccountStore {
	return &AccountStore{byUser: make(map[uint][]accounts.SocialAccount)}
}

func (s *AccountStore) InsertGuarded(_ context.Context, acct *accounts.SocialAccount, guard accounts.Guard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.byUser[acct.UserID]
	for _, a := range existing {
		if a.Platform == acct.Platform && a.Handle == acct.Handle {
			return accounts.ErrAccountExists
		}
	}
	if guard != nil {
		if err := guard(len(existing)); err != nil {
			return err
		}
	}
	s.byUser[acct.UserID] = append(existing, *acct)
	return nil
}

func (s *AccountStore) Count(_ context.Context, userID uint) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byUser[userID]), nil
}

func (s *AccountStore) List(_ context.Context, userID uint) ([]accounts.SocialAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]accounts.SocialAccount{}, s.byUser[userID]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *AccountStore) Delete(_ context.Context, userID uint, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.byUser[userID]
	for i, a := range list {
		if a.ID == id {
			s.byUser[userID] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return accounts.ErrAccountNotFound
}
