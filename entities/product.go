package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	Name                string          `gorm:"size:200;not null;index" json:"name"`
	Category            string          `gorm:"size:50" json:"category"`
	Brand               string          `gorm:"size:100" json:"brand"`
	Description         string          `gorm:"type:text" json:"description"`
	Price               decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Discount            decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"discount"` // percent 0-100
	Stock               int             `gorm:"not null;default:0" json:"stock"`
	ImagePath           string          `gorm:"size:255" json:"image_path"`
	UsageCrops          string          `gorm:"type:text" json:"usage_crops"`
	NutrientComposition string          `gorm:"type:text" json:"nutrient_composition"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
