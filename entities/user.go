package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Role         string `gorm:"size:10;index;not null" json:"role"` // farmer|admin
	Name         string `gorm:"size:150;not null" json:"name"`
	Email        string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Mobile       string `gorm:"size:15;index" json:"mobile"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// farmer only
	Village           string           `gorm:"size:100" json:"village,omitempty"`
	Taluka            string           `gorm:"size:100" json:"taluka,omitempty"`
	District          string           `gorm:"size:100" json:"district,omitempty"`
	LandArea          *decimal.Decimal `gorm:"type:decimal(10,2)" json:"land_area,omitempty"`
	SoilType          string           `gorm:"size:50" json:"soil_type,omitempty"`
	WaterAvailability string           `gorm:"size:50" json:"water_availability,omitempty"`

	// admin only
	AdminRole string `gorm:"size:50" json:"admin_role,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
