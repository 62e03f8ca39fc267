package repository

import (
	"context"

	"farmintel/entities"
)

type UserRepository interface {
	Create(ctx context.Context, u *entities.User) error
	EmailExists(ctx context.Context, email string) (bool, error)
	FindFarmerByEmail(ctx context.Context, email string) (*entities.User, error)
	FindFarmerByMobile(ctx context.Context, mobile string) (*entities.User, error)
	FindFarmerByID(ctx context.Context, id uint) (*entities.User, error)
	// FindAdmin matches identifier against email or name.
	FindAdmin(ctx context.Context, identifier string) (*entities.User, error)
}
