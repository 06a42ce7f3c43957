package memory

import (
	"context"
	"sort"
	"sync"

	"social-scheduler/internal/domain/billing"
	"social-scheduler/internal/domain/plans"
)

type PriceStore struct {
	mu      sync.RWMutex
	byPrice map[string]billing.PriceMapping
}

func NewPriceStore() *PriceStore {
	return &PriceStore{byPrice: make(map[string]billing.PriceMapping)}
}

func (s *PriceStore) PlanForPrice(_ context.Context, stripePriceID string) (plans.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.byPrice[stripePriceID]
	if !ok {
		return "", billing.ErrPriceNotMapped
	}
	return m.Plan, nil
}

func (s *PriceStore) Upsert(_ context.Context, m *billing.PriceMapping) error {
	plan, err := plans.ParsePlan(string(m.Plan))
	if err != nil {
		return err
	}
	m.Plan = plan
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byPrice[m.StripePriceID] = *m
	return nil
}

func (s *PriceStore) List(_ context.Context) ([]billing.PriceMapping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]billing.PriceMapping, 0, len(s.byPrice))
	for _, m := range s.byPrice {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StripePriceID < out[j].StripePriceID })
	return out, nil
}
