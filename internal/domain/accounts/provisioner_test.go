package accounts_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-scheduler/internal/domain/accounts"
	"social-scheduler/internal/domain/plans"
	"social-scheduler/internal/domain/users"
	"social-scheduler/internal/infra/memory"
)

func newUser(id uint, plan plans.Plan) users.User {
	return users.User{ID: id, Email: "u@example.com", Role: "owner", Plan: plan}
}

func TestConnect_Success(t *testing.T) {
	p := accounts.NewProvisioner(memory.NewAccountStore())
	u := newUser(1, plans.PlanFree)

	acct, err := p.Connect(context.Background(), u, " Instagram ", " @brand ")
	require.NoError(t, err)
	assert.NotEmpty(t, acct.ID)
	assert.Equal(t, plans.PlatformInstagram, acct.Platform)
	assert.Equal(t, "@brand", acct.Handle)
	assert.Equal(t, uint(1), acct.UserID)

	list, err := p.List(context.Background(), u)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestConnect_LimitReached(t *testing.T) {
	ctx := context.Background()
	p := accounts.NewProvisioner(memory.NewAccountStore())
	u := newUser(1, plans.PlanFree)

	_, err := p.Connect(ctx, u, "instagram", "first")
	require.NoError(t, err)

	_, err = p.Connect(ctx, u, "instagram", "second")
	require.Error(t, err)
	assert.True(t, accounts.IsLimitReached(err))

	var limitErr *accounts.LimitReachedError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, 1, limitErr.Current)
	assert.Equal(t, 1, limitErr.Max)
	assert.Equal(t, plans.PlanFree, limitErr.Plan)
	assert.Contains(t, err.Error(), "1/1")
}

func TestConnect_PlatformUnavailable(t *testing.T) {
	p := accounts.NewProvisioner(memory.NewAccountStore())
	u := newUser(1, plans.PlanStarter)

	_, err := p.Connect(context.Background(), u, "tiktok", "dance")
	require.Error(t, err)
	assert.True(t, accounts.IsPlatformUnavailable(err))

	var platErr *accounts.PlatformUnavailableError
	require.True(t, errors.As(err, &platErr))
	assert.Equal(t, plans.PlanPro, platErr.Recommended)
	assert.Equal(t, plans.PlanStarter, platErr.Plan)
}

func TestConnect_InvalidInput(t *testing.T) {
	p := accounts.NewProvisioner(memory.NewAccountStore())
	u := newUser(1, plans.PlanPro)

	_, err := p.Connect(context.Background(), u, "", "x")
	assert.ErrorIs(t, err, accounts.ErrInvalidPlatform)

	_, err = p.Connect(context.Background(), u, "youtube", "  ")
	assert.ErrorIs(t, err, accounts.ErrInvalidHandle)

	_, err = p.Connect(context.Background(), newUser(2, "gold"), "youtube", "x")
	assert.ErrorIs(t, err, plans.ErrUnknownPlan)
}

func TestConnect_Duplicate(t *testing.T) {
	ctx := context.Background()
	p := accounts.NewProvisioner(memory.NewAccountStore())
	u := newUser(1, plans.PlanPro)

	_, err := p.Connect(ctx, u, "youtube", "chan")
	require.NoError(t, err)
	_, err = p.Connect(ctx, u, "youtube", "chan")
	assert.ErrorIs(t, err, accounts.ErrAccountExists)
}

func TestConnect_ConcurrentRequestsRespectCeiling(t *testing.T) {
	ctx := context.Background()
	p := accounts.NewProvisioner(memory.NewAccountStore())
	u := newUser(7, plans.PlanStarter)

	var ok, limited atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := p.Connect(ctx, u, "twitter", fmt.Sprintf("handle-%d", i))
			switch {
			case err == nil:
				ok.Add(1)
			case accounts.IsLimitReached(err):
				limited.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(5), ok.Load())
	assert.Equal(t, int32(35), limited.Load())

	usage, err := p.Usage(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, accounts.Usage{Plan: plans.PlanStarter, Connected: 5, Max: 5, Remaining: 0}, usage)
}

func TestDisconnectFreesSlot(t *testing.T) {
	ctx := context.Background()
	p := accounts.NewProvisioner(memory.NewAccountStore())
	u := newUser(1, plans.PlanFree)

	acct, err := p.Connect(ctx, u, "instagram", "first")
	require.NoError(t, err)
	require.NoError(t, p.Disconnect(ctx, u, acct.ID))

	_, err = p.Connect(ctx, u, "instagram", "second")
	assert.NoError(t, err)

	assert.ErrorIs(t, p.Disconnect(ctx, u, "missing"), accounts.ErrAccountNotFound)
}

func TestUsage_AfterDowngrade(t *testing.T) {
	ctx := context.Background()
	p := accounts.NewProvisioner(memory.NewAccountStore())
	u := newUser(1, plans.PlanStarter)

	for _, h := range []string{"a", "b", "c"} {
		_, err := p.Connect(ctx, u, "facebook", h)
		require.NoError(t, err)
	}

	u.Plan = plans.PlanFree
	usage, err := p.Usage(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, 3, usage.Connected)
	assert.Equal(t, 1, usage.Max)
	assert.Equal(t, 0, usage.Remaining)
}
