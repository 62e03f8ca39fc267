package repository

import (
	"context"

	"farmintel/entities"
)

type CropRepository interface {
	// ListActive and ListAll order by name and fill FirstImage.
	ListActive(ctx context.Context) ([]entities.Crop, error)
	ListAll(ctx context.Context) ([]entities.Crop, error)
	FindActive(ctx context.Context, id uint) (*entities.Crop, error)
	FindByID(ctx context.Context, id uint) (*entities.Crop, error)
	Create(ctx context.Context, c *entities.Crop) error
	// Update overwrites the scalar columns and appends images after the existing ones.
	Update(ctx context.Context, c *entities.Crop, newImages []string) error
	// Delete removes the crop with its images and returns the image paths.
	Delete(ctx context.Context, id uint) ([]string, error)
	Toggle(ctx context.Context, id uint) error
}
