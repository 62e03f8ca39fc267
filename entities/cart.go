package entities

import "time"

// CartItem is one line of a farmer's cart. (farmer_id, product_id) is unique.
type CartItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	FarmerID  uint `gorm:"not null;uniqueIndex:idx_cart_farmer_product" json:"farmer_id"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_cart_farmer_product" json:"product_id"`
	Quantity  int  `gorm:"not null" json:"quantity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CartItem) TableName() string { return "cart" }
