package accounts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"social-scheduler/internal/domain/plans"
	"social-scheduler/internal/domain/users"
)

type Provisioner struct {
	store Store
	now   func() time.Time
}

func NewProvisioner(store Store) *Provisioner {
	return &Provisioner{store: store, now: time.Now}
}

// Connect attaches a new social account to the user if the user's plan offers the
// platform and still has room under its account ceiling.
func (p *Provisioner) Connect(ctx context.Context, u users.User, platform, handle string) (*SocialAccount, error) {
	pl := plans.NormalizePlatform(platform)
	if pl == "" {
		return nil, ErrInvalidPlatform
	}
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, ErrInvalidHandle
	}

	ok, err := plans.IsPlatformAvailable(pl, u.Plan)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &PlatformUnavailableError{
			Platform:    pl,
			Plan:        u.Plan,
			Recommended: plans.RecommendedPlan(pl),
		}
	}

	acct := &SocialAccount{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Platform:  pl,
		Handle:    handle,
		CreatedAt: p.now().UTC(),
	}

	err = p.store.InsertGuarded(ctx, acct, func(current int) error {
		return checkCeiling(u.Plan, current)
	})
	if err != nil {
		return nil, err
	}
	return acct, nil
}

func checkCeiling(plan plans.Plan, current int) error {
	ok, err := plans.CanAddAccount(current, plan)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	msg, err := plans.LimitReachedMessage(plan, current)
	if err != nil {
		return err
	}
	e, err := plans.EntitlementFor(plan)
	if err != nil {
		return err
	}
	return &LimitReachedError{Plan: plan, Current: current, Max: e.MaxAccounts, Message: msg}
}

func (p *Provisioner) Disconnect(ctx context.Context, u users.User, id string) error {
	return p.store.Delete(ctx, u.ID, id)
}

func (p *Provisioner) List(ctx context.Context, u users.User) ([]SocialAccount, error) {
	return p.store.List(ctx, u.ID)
}

// Usage reports how much of the plan's account ceiling is in use. Remaining is never
// negative, even after a downgrade left the user above the new ceiling.
func (p *Provisioner) Usage(ctx context.Context, u users.User) (Usage, error) {
	e, err := plans.EntitlementFor(u.Plan)
	if err != nil {
		return Usage{}, err
	}
	n, err := p.store.Count(ctx, u.ID)
	if err != nil {
		return Usage{}, fmt.Errorf("count accounts: %w", err)
	}
	return Usage{
		Plan:      u.Plan,
		Connected: n,
		Max:       e.MaxAccounts,
		Remaining: max(e.MaxAccounts-n, 0),
	}, nil
}
