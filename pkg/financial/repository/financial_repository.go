package repository

import (
	"context"

	"farmintel/entities"
)

// FinancialRepository scopes every lookup to the owning farmer.
type FinancialRepository interface {
	ListByFarmer(ctx context.Context, farmerID uint) ([]entities.FinancialRecord, error)
	FindOwned(ctx context.Context, id, farmerID uint) (*entities.FinancialRecord, error)
	Create(ctx context.Context, r *entities.FinancialRecord) error
	UpdateOwned(ctx context.Context, r *entities.FinancialRecord) error
	DeleteOwned(ctx context.Context, id, farmerID uint) error
}
