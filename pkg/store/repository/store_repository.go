package repository

import (
	"context"

	"farmintel/entities"
	"farmintel/pkg/store"
)

type StoreRepository interface {
	// Transaction runs fn against a repository bound to one transaction.
	Transaction(ctx context.Context, fn func(r StoreRepository) error) error

	ListInStock(ctx context.Context) ([]entities.Product, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
	FindProduct(ctx context.Context, id uint) (*entities.Product, error)
	CreateProduct(ctx context.Context, p *entities.Product) error
	UpdateProduct(ctx context.Context, p *entities.Product) error
	// DeleteProduct removes the product and every cart line for it and
	// returns the image path it held.
	DeleteProduct(ctx context.Context, id uint) (string, error)

	AddToCart(ctx context.Context, farmerID, productID uint, qty int) error
	SetCartQuantity(ctx context.Context, farmerID, cartID uint, qty int) error
	RemoveCartLine(ctx context.Context, farmerID, cartID uint) error
	CartLines(ctx context.Context, farmerID uint) ([]store.Line, error)
	ClearCart(ctx context.Context, farmerID uint) error

	CreateOrder(ctx context.Context, o *entities.Order) error
	// DecrementStock reports false when fewer than qty units remain.
	DecrementStock(ctx context.Context, productID uint, qty int) (bool, error)
	ListOrders(ctx context.Context, farmerID uint) ([]entities.Order, error)
	FindOrder(ctx context.Context, farmerID, id uint) (*entities.Order, error)
}
