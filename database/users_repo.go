package database

import (
	"context"
	"errors"
	"fmt"

	"social-scheduler/internal/domain/access"
	"social-scheduler/internal/domain/plans"
	"social-scheduler/internal/domain/users"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *users.User) error {
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

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return users.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*users.User, error) {
	var u users.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserRepository) FindByStripeCustomerID(ctx context.Context, customerID string) (*users.User, error) {
	var u users.User
	if err := r.db.WithContext(ctx).Where("stripe_customer_id = ?", customerID).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]users.User, error) {
	var list []users.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id uint, role access.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", access.ErrUnknownRole, string(role))
	}
	return r.update(ctx, id, "role", string(role))
}

func (r *UserRepository) UpdatePlan(ctx context.Context, id uint, plan plans.Plan) error {
	if !plan.Valid() {
		return fmt.Errorf("%w: %q", plans.ErrUnknownPlan, string(plan))
	}
	return r.update(ctx, id, "plan", string(plan))
}

func (r *UserRepository) LinkStripeCustomer(ctx context.Context, id uint, customerID string) error {
	err := r.update(ctx, id, "stripe_customer_id", customerID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return users.ErrCustomerLinked
	}
	return err
}

func (r *UserRepository) update(ctx context.Context, id uint, column string, value any) error {
	res := r.db.WithContext(ctx).Model(&users.User{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return users.ErrUserNotFound
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return users.ErrUserNotFound
	}
	return err
}
