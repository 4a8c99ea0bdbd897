package repository

import (
	"bitwise74/task-api/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (r *Users) Create(ctx context.Context, u model.User) (model.User, error) {
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		return model.User{}, err
	}

	return u, nil
}

func (r *Users) FindByID(ctx context.Context, id uint) (model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		return model.User{}, notFound(err)
	}

	return u, nil
}

func (r *Users) FindByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).
		Error
	if err != nil {
		return model.User{}, notFound(err)
	}

	return u, nil
}

// EmailTaken reports whether a user with email is already registered
func (r *Users) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(model.User{}).
		Where("email = ?", email).
		Count(&count).
		Error

	return count > 0, err
}

// SetResetToken stores a password reset token and its creation time on the user
func (r *Users) SetResetToken(ctx context.Context, id uint, token string, at time.Time) (model.User, error) {
	res := r.db.WithContext(ctx).
		Model(model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"token":            token,
			"token_created_at": at,
		})
	if res.Error != nil {
		return model.User{}, res.Error
	}

	if res.RowsAffected == 0 {
		return model.User{}, ErrNotFound
	}

	return r.FindByID(ctx, id)
}

// ClearExpiredTokens removes reset tokens created before cutoff and returns how
// many users were touched
func (r *Users) ClearExpiredTokens(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(model.User{}).
		Where("token IS NOT NULL AND token_created_at < ?", cutoff).
		Updates(map[string]any{
			"token":            nil,
			"token_created_at": nil,
		})

	return res.RowsAffected, res.Error
}

func (r *Users) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
