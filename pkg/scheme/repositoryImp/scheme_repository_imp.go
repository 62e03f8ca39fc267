package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"farmintel/entities"
	"farmintel/pkg/apperr"
	"farmintel/pkg/scheme/repository"
)

var editable = []string{
	"name", "scheme_type", "eligible_crop", "eligibility_criteria",
	"benefits", "required_documents", "apply_link", "status", "updated_at",
}

type schemeRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SchemeRepository { return &schemeRepo{db} }

func (r *schemeRepo) ListByStatus(ctx context.Context, status string) ([]entities.Scheme, error) {
	var out []entities.Scheme
	return out, r.db.WithContext(ctx).Where("status = ?", status).Order("name ASC, id ASC").Find(&out).Error
}

func (r *schemeRepo) ListAll(ctx context.Context) ([]entities.Scheme, error) {
	var out []entities.Scheme
	return out, r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&out).Error
}

func (r *schemeRepo) FindByID(ctx context.Context, id uint) (*entities.Scheme, error) {
	var s entities.Scheme
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("scheme")
		}
		return nil, err
	}
	return &s, nil
}

func (r *schemeRepo) Create(ctx context.Context, s *entities.Scheme) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *schemeRepo) Update(ctx context.Context, s *entities.Scheme) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&entities.Scheme{}, s.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("scheme")
			}
			return err
		}
		return tx.Model(&entities.Scheme{ID: s.ID}).Select(editable).Updates(s).Error
	})
}

func (r *schemeRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entities.Scheme{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("scheme")
	}
	return nil
}
