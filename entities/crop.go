package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Crop struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	Name           string           `gorm:"size:150;not null;index" json:"name"`
	Category       string           `gorm:"size:50" json:"category"`
	Duration       string           `gorm:"size:100" json:"duration"`
	AveragePrice   *decimal.Decimal `gorm:"type:decimal(10,2)" json:"average_price"`
	MarketPrice    *decimal.Decimal `gorm:"type:decimal(10,2)" json:"market_price"`
	PesticidesName string           `gorm:"size:255" json:"pesticides_name"`
	BestSeedsName  string           `gorm:"size:255" json:"best_seeds_name"`
	FertilizerName string           `gorm:"size:255" json:"fertilizer_name"`
	Season         string           `gorm:"size:50" json:"season"` // Kharif|Rabi|Zaid
	SoilType       string           `gorm:"size:100" json:"soil_type"`
	IndiaDemand    string           `gorm:"size:100" json:"india_demand"`
	Description    string           `gorm:"type:text" json:"description"`
	Active         bool             `gorm:"not null;default:true;index" json:"active"`

	Images []CropImage `gorm:"foreignKey:CropID" json:"images"`

	// not persisted
	FirstImage string `gorm:"-" json:"first_image,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CropImage struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	CropID   uint   `gorm:"index;not null" json:"-"`
	Position int    `gorm:"not null" json:"position"`
	Path     string `gorm:"size:255;not null" json:"path"`
}
