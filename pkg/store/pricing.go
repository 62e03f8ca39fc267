// Package store prices carts for the farm store. Amounts stay exact until
// they are persisted or displayed; only then are they rounded to paise.
package store

import (
	"github.com/shopspring/decimal"

	"farmintel/pkg/apperr"
)

var (
	// GSTRate is the flat 5% tax applied to every order.
	GSTRate = decimal.New(5, -2)

	one = decimal.NewFromInt(1)
)

// ErrEmptyCart is returned by checkout when there is nothing to buy.
var ErrEmptyCart = apperr.Validation("Cart is empty.")

// Line is one cart row joined with live product data.
type Line struct {
	CartID    uint            `json:"cart_id"`
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Discount  decimal.Decimal `json:"discount"`
	Stock     int             `json:"stock"`
	ImagePath string          `json:"image_path"`

	UnitPrice decimal.Decimal `gorm:"-" json:"unit_price"`
	LineTotal decimal.Decimal `gorm:"-" json:"line_total"`
}

// Quote is a priced cart.
type Quote struct {
	Lines    []Line          `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	GST      decimal.Decimal `json:"gst"`
	Total    decimal.Decimal `json:"total"`
}

// UnitPrice is price less a percentage discount.
func UnitPrice(price, discountPct decimal.Decimal) decimal.Decimal {
	return price.Mul(one.Sub(discountPct.Shift(-2)))
}

// Price fills in unit and line totals and sums the cart.
func Price(lines []Line) Quote {
	if lines == nil {
		lines = []Line{}
	}
	q := Quote{Lines: lines, Subtotal: decimal.Zero}
	for i := range q.Lines {
		l := &q.Lines[i]
		l.UnitPrice = UnitPrice(l.Price, l.Discount)
		l.LineTotal = l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
		q.Subtotal = q.Subtotal.Add(l.LineTotal)
	}
	q.GST = q.Subtotal.Mul(GSTRate)
	q.Total = q.Subtotal.Add(q.GST)
	return q
}

// CheckStock rejects an empty cart or any line asking for more than is left.
func CheckStock(lines []Line) error {
	if len(lines) == 0 {
		return ErrEmptyCart
	}
	for _, l := range lines {
		if l.Quantity > l.Stock {
			return InsufficientStock(l.Name)
		}
	}
	return nil
}

func InsufficientStock(product string) error {
	return apperr.Validationf("Insufficient stock for %s.", product)
}

// Settle rounds subtotal and GST to paise and takes the total as their sum,
// so a stored invoice always adds up.
func (q Quote) Settle() (subtotal, gst, total decimal.Decimal) {
	subtotal, gst = Money(q.Subtotal), Money(q.GST)
	return subtotal, gst, subtotal.Add(gst)
}

// Money rounds an amount for storage.
func Money(d decimal.Decimal) decimal.Decimal { return d.Round(2) }
