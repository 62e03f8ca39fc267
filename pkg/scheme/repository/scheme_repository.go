package repository

import (
	"context"

	"farmintel/entities"
)

type SchemeRepository interface {
	ListByStatus(ctx context.Context, status string) ([]entities.Scheme, error)
	ListAll(ctx context.Context) ([]entities.Scheme, error)
	FindByID(ctx context.Context, id uint) (*entities.Scheme, error)
	Create(ctx context.Context, s *entities.Scheme) error
	Update(ctx context.Context, s *entities.Scheme) error
	Delete(ctx context.Context, id uint) error
}
