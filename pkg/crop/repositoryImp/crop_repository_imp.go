package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"farmintel/entities"
	"farmintel/pkg/apperr"
	"farmintel/pkg/crop/repository"
)

// columns written by Update; Select forces nil prices and empty strings through
var editable = []string{
	"name", "category", "duration", "average_price", "market_price",
	"pesticides_name", "best_seeds_name", "fertilizer_name",
	"season", "soil_type", "india_demand", "description", "updated_at",
}

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func orderedImages(db *gorm.DB) *gorm.DB { return db.Order("position ASC, id ASC") }

func (r *cropRepo) list(ctx context.Context, activeOnly bool) ([]entities.Crop, error) {
	q := r.db.WithContext(ctx).Preload("Images", orderedImages)
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var out []entities.Crop
	if err := q.Order("name ASC, id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	for i := range out {
		fillFirstImage(&out[i])
	}
	return out, nil
}

func (r *cropRepo) ListActive(ctx context.Context) ([]entities.Crop, error) { return r.list(ctx, true) }

func (r *cropRepo) ListAll(ctx context.Context) ([]entities.Crop, error) { return r.list(ctx, false) }

func (r *cropRepo) FindActive(ctx context.Context, id uint) (*entities.Crop, error) {
	return r.find(r.db.WithContext(ctx).Where("active = ?", true), id)
}

func (r *cropRepo) FindByID(ctx context.Context, id uint) (*entities.Crop, error) {
	return r.find(r.db.WithContext(ctx), id)
}

func (r *cropRepo) find(q *gorm.DB, id uint) (*entities.Crop, error) {
	var c entities.Crop
	if err := q.Preload("Images", orderedImages).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("crop")
		}
		return nil, err
	}
	fillFirstImage(&c)
	return &c, nil
}

func (r *cropRepo) Create(ctx context.Context, c *entities.Crop) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cropRepo) Update(ctx context.Context, c *entities.Crop, newImages []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&entities.Crop{}, c.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("crop")
			}
			return err
		}
		if err := tx.Model(&entities.Crop{ID: c.ID}).Select(editable).Updates(c).Error; err != nil {
			return err
		}
		if len(newImages) == 0 {
			return nil
		}
		var next int
		if err := tx.Model(&entities.CropImage{}).Where("crop_id = ?", c.ID).
			Select("COALESCE(MAX(position) + 1, 0)").Scan(&next).Error; err != nil {
			return err
		}
		imgs := make([]entities.CropImage, len(newImages))
		for i, p := range newImages {
			imgs[i] = entities.CropImage{CropID: c.ID, Position: next + i, Path: p}
		}
		return tx.Create(&imgs).Error
	})
}

func (r *cropRepo) Delete(ctx context.Context, id uint) ([]string, error) {
	var paths []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.CropImage{}).Where("crop_id = ?", id).Pluck("path", &paths).Error; err != nil {
			return err
		}
		if err := tx.Where("crop_id = ?", id).Delete(&entities.CropImage{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&entities.Crop{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("crop")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func (r *cropRepo) Toggle(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&entities.Crop{}).Where("id = ?", id).
		Update("active", gorm.Expr("NOT active"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("crop")
	}
	return nil
}

func fillFirstImage(c *entities.Crop) {
	if len(c.Images) > 0 {
		c.FirstImage = c.Images[0].Path
	}
}
