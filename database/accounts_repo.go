package database

import (
	"context"
	"errors"

	"social-scheduler/internal/domain/accounts"
	"social-scheduler/internal/domain/users"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccountStore struct {
	db *gorm.DB
}

func NewAccountStore(db *gorm.DB) *AccountStore {
	return &AccountStore{db: db}
}

// InsertGuarded locks the owning user row (SELECT ... FOR UPDATE) so concurrent
// connects for the same user run the count, guard and insert one at a time.
func (s *AccountStore) InsertGuarded(ctx context.Context, acct *accounts.SocialAccount, guard accounts.Guard) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner users.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&owner, acct.UserID).Error
		if err != nil {
			return notFound(err)
		}

		var dup int64
		if err := tx.Model(&accounts.SocialAccount{}).
			Where("user_id = ? AND platform = ? AND handle = ?", acct.UserID, string(acct.Platform), acct.Handle).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return accounts.ErrAccountExists
		}

		var current int64
		if err := tx.Model(&accounts.SocialAccount{}).
			Where("user_id = ?", acct.UserID).
			Count(&current).Error; err != nil {
			return err
		}

		if guard != nil {
			if err := guard(int(current)); err != nil {
				return err
			}
		}

		if err := tx.Create(acct).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return accounts.ErrAccountExists
			}
			return err
		}
		return nil
	})
}

func (s *AccountStore) Count(ctx context.Context, userID uint) (int, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&accounts.SocialAccount{}).Where("user_id = ?", userID).Count(&n).Error
	return int(n), err
}

func (s *AccountStore) List(ctx context.Context, userID uint) ([]accounts.SocialAccount, error) {
	var list []accounts.SocialAccount
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (s *AccountStore) Delete(ctx context.Context, userID uint, id string) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&accounts.SocialAccount{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return accounts.ErrAccountNotFound
	}
	return nil
}
