package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type FinancialRecord struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	FarmerID        uint            `gorm:"index;not null" json:"farmer_id"`
	CropName        string          `gorm:"size:150;not null" json:"crop_name"`
	Season          string          `gorm:"size:50" json:"season"`
	SeedsCost       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"seeds_cost"`
	FertilizerCost  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"fertilizer_cost"`
	PesticidesCost  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"pesticides_cost"`
	IrrigationCost  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"irrigation_cost"`
	LabourCost      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"labour_cost"`
	MachineryCost   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"machinery_cost"`
	OtherExpenses   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"other_expenses"`
	TotalProduction decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_production"`
	SellingPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"selling_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
