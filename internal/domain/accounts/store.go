package accounts

import "context"

// Guard inspects the user's current account count and vetoes an insert by returning an error.
type Guard func(current int) error

// Store persists connected accounts.
//
// InsertGuarded must read the count, call guard and insert the row inside one critical
// section per user (a locked transaction, a mutex). This is what makes the plan ceiling
// hold under concurrent requests; the plan check itself is a pure predicate.
type Store interface {
	InsertGuarded(ctx context.Context, acct *SocialAccount, guard Guard) error
	Count(ctx context.Context, userID uint) (int, error)
	List(ctx context.Context, userID uint) ([]SocialAccount, error)
	Delete(ctx context.Context, userID uint, id string) error
}
