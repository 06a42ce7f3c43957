package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"social-scheduler/internal/domain/access"
	"social-scheduler/internal/domain/plans"
	"social-scheduler/internal/domain/users"
)

type UserStore struct {
	mu     sync.RWMutex
	nextID uint
	byID   map[uint]users.User
}

func NewUserStore() *UserStore {
	return &UserStore{byID: make(map[uint]users.User)}
}

func (s *UserStore) Create(_ context.Context, u *users.User) error {
	if u.Role == "" {
		u.Role = access.RoleViewer
	}
	if u.Plan == "" {
		u.Plan = plans.PlanFree
	}
	if !u.Role.Valid() {
		return fmt.Errorf("%w: %q", access.ErrUnknownRole, string(u.Role))
	}
	if !u.Plan.Valid() {
		return fmt.Errorf("%w: %q", plans.ErrUnknownPlan, string(u.Plan))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.byID {
		if existing.Email == u.Email {
			return users.ErrEmailTaken
		}
	}
	s.nextID++
	now := time.Now().UTC()
	u.ID = s.nextID
	u.CreatedAt = now
	u.UpdatedAt = now
	s.byID[u.ID] = *u
	return nil
}

func (s *UserStore) FindByID(_ context.Context, id uint) (*users.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return &u, nil
}

func (s *UserStore) FindByStripeCustomerID(_ context.Context, customerID string) (*users.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.byID {
		if u.StripeCustomerID != nil && *u.StripeCustomerID == customerID {
			return &u, nil
		}
	}
	return nil, users.ErrUserNotFound
}

func (s *UserStore) List(_ context.Context) ([]users.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]users.User, 0, len(s.byID))
	for _, u := range s.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *UserStore) UpdateRole(_ context.Context, id uint, role access.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", access.ErrUnknownRole, string(role))
	}
	return s.update(id, func(u *users.User) { u.Role = role })
}

func (s *UserStore) UpdatePlan(_ context.Context, id uint, plan plans.Plan) error {
	if !plan.Valid() {
		return fmt.Errorf("%w: %q", plans.ErrUnknownPlan, string(plan))
	}
	return s.update(id, func(u *users.User) { u.Plan = plan })
}

func (s *UserStore) LinkStripeCustomer(_ context.Context, id uint, customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for otherID, u := range s.byID {
		if otherID != id && u.StripeCustomerID != nil && *u.StripeCustomerID == customerID {
			return users.ErrCustomerLinked
		}
	}
	u, ok := s.byID[id]
	if !ok {
		return users.ErrUserNotFound
	}
	u.StripeCustomerID = &customerID
	u.UpdatedAt = time.Now().UTC()
	s.byID[id] = u
	return nil
}

func (s *UserStore) update(id uint, fn func(u *users.User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return users.ErrUserNotFound
	}
	fn(&u)
	u.UpdatedAt = time.Now().UTC()
	s.byID[id] = u
	return nil
}
