package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"farmintel/entities"
	"farmintel/pkg/apperr"
	"farmintel/pkg/financial/repository"
)

var editable = []string{
	"crop_name", "season", "seeds_cost", "fertilizer_cost", "pesticides_cost",
	"irrigation_cost", "labour_cost", "machinery_cost", "other_expenses",
	"total_production", "selling_price", "updated_at",
}

type financialRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FinancialRepository { return &financialRepo{db} }

func (r *financialRepo) ListByFarmer(ctx context.Context, farmerID uint) ([]entities.FinancialRecord, error) {
	var out []entities.FinancialRecord
	err := r.db.WithContext(ctx).Where("farmer_id = ?", farmerID).
		Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *financialRepo) FindOwned(ctx context.Context, id, farmerID uint) (*entities.FinancialRecord, error) {
	return findOwned(r.db.WithContext(ctx), id, farmerID)
}

func findOwned(db *gorm.DB, id, farmerID uint) (*entities.FinancialRecord, error) {
	var rec entities.FinancialRecord
	if err := db.Where("id = ? AND farmer_id = ?", id, farmerID).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("record")
		}
		return nil, err
	}
	return &rec, nil
}

func (r *financialRepo) Create(ctx context.Context, rec *entities.FinancialRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *financialRepo) UpdateOwned(ctx context.Context, rec *entities.FinancialRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findOwned(tx, rec.ID, rec.FarmerID); err != nil {
			return err
		}
		return tx.Model(&entities.FinancialRecord{}).
			Where("id = ? AND farmer_id = ?", rec.ID, rec.FarmerID).
			Select(editable).Updates(rec).Error
	})
}

func (r *financialRepo) DeleteOwned(ctx context.Context, id, farmerID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND farmer_id = ?", id, farmerID).Delete(&entities.FinancialRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("record")
	}
	return nil
}
