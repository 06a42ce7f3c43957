package accounts

import (
	"errors"
	"fmt"

	"social-scheduler/internal/domain/plans"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already connected")
	ErrInvalidHandle   = errors.New("account handle is required")
	ErrInvalidPlatform = errors.New("platform is required")
)

// LimitReachedError is returned when the plan's account ceiling is already met.
type LimitReachedError struct {
	Plan    plans.Plan
	Current int
	Max     int
	Message string
}

func (e *LimitReachedError) Error() string {
	return e.Message
}

// PlatformUnavailableError is returned when the plan does not include the platform.
type PlatformUnavailableError struct {
	Platform    plans.Platform
	Plan        plans.Plan
	Recommended plans.Plan
}

func (e *PlatformUnavailableError) Error() string {
	return fmt.Sprintf("%s is not available on the %s plan; upgrade to %s", e.Platform, e.Plan, e.Recommended)
}

func IsLimitReached(err error) bool {
	var target *LimitReachedError
	return errors.As(err, &target)
}

func IsPlatformUnavailable(err error) bool {
	var target *PlatformUnavailableError
	return errors.As(err, &target)
}
