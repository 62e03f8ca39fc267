package service

import (
	"context"
	"mime/multipart"

	"farmintel/entities"
)

// CropForm is the admin add/edit form.
type CropForm struct {
	Name           string `form:"name" json:"name"`
	Category       string `form:"category" json:"category"`
	Duration       string `form:"duration" json:"duration"`
	AveragePrice   string `form:"average_price" json:"average_price"`
	MarketPrice    string `form:"market_price" json:"market_price"`
	PesticidesName string `form:"pesticides_name" json:"pesticides_name"`
	BestSeedsName  string `form:"best_seeds_name" json:"best_seeds_name"`
	FertilizerName string `form:"fertilizer_name" json:"fertilizer_name"`
	Season         string `form:"season" json:"season"`
	SoilType       string `form:"soil_type" json:"soil_type"`
	IndiaDemand    string `form:"india_demand" json:"india_demand"`
	Description    string `form:"description" json:"description"`
}

// ImageStore persists uploaded crop images.
type ImageStore interface {
	SaveAll(sub string, files []*multipart.FileHeader) ([]string, error)
	Remove(rel string) error
}

type CropService interface {
	ListForFarmer(ctx context.Context) ([]entities.Crop, error)
	DetailForFarmer(ctx context.Context, id uint) (*entities.Crop, error)
	ListForAdmin(ctx context.Context) ([]entities.Crop, error)
	Get(ctx context.Context, id uint) (*entities.Crop, error)
	Create(ctx context.Context, in CropForm, images []*multipart.FileHeader) (*entities.Crop, error)
	Update(ctx context.Context, id uint, in CropForm, images []*multipart.FileHeader) (*entities.Crop, error)
	Delete(ctx context.Context, id uint) error
	Toggle(ctx context.Context, id uint) (*entities.Crop, error)
}
