package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderStatusCompleted = "Completed"

type Order struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	FarmerID  uint            `gorm:"index;not null" json:"farmer_id"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	GST       decimal.Decimal `gorm:"column:gst;type:decimal(12,2);not null" json:"gst"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Status    string          `gorm:"size:20;not null" json:"status"`
	OrderDate time.Time       `gorm:"autoCreateTime" json:"order_date"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// OrderItem snapshots the unit price and product name at purchase time.
type OrderItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	OrderID      uint            `gorm:"index;not null" json:"order_id"`
	ProductID    uint            `gorm:"index;not null" json:"product_id"`
	ProductName  string          `gorm:"size:200" json:"name"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	PricePerUnit decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_unit"`
}
