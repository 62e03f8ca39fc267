package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"farmintel/entities"
	"farmintel/pkg/apperr"
	"farmintel/pkg/auth"
	"farmintel/pkg/auth/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(ctx context.Context, u *entities.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

func (r *userRepo) FindFarmerByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.first(ctx, "role = ? AND email = ?", string(auth.RoleFarmer), email)
}

func (r *userRepo) FindFarmerByMobile(ctx context.Context, mobile string) (*entities.User, error) {
	return r.first(ctx, "role = ? AND mobile = ?", string(auth.RoleFarmer), mobile)
}

func (r *userRepo) FindFarmerByID(ctx context.Context, id uint) (*entities.User, error) {
	return r.first(ctx, "role = ? AND id = ?", string(auth.RoleFarmer), id)
}

func (r *userRepo) FindAdmin(ctx context.Context, identifier string) (*entities.User, error) {
	return r.first(ctx, "role = ? AND (email = ? OR name = ?)", string(auth.RoleAdmin), identifier, identifier)
}

func (r *userRepo) first(ctx context.Context, query string, args ...any) (*entities.User, error) {
	var u entities.User
	if err := r.db.WithContext(ctx).Where(query, args...).Order("id").First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, err
	}
	return &u, nil
}
