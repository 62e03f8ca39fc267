package service

import (
	"context"
	"mime/multipart"

	"farmintel/entities"
	"farmintel/pkg/store"
)

// ProductForm is the admin add/edit form.
type ProductForm struct {
	Name                string `form:"name" json:"name"`
	Category            string `form:"category" json:"category"`
	Brand               string `form:"brand" json:"brand"`
	Description         string `form:"description" json:"description"`
	Price               string `form:"price" json:"price"`
	Discount            string `form:"discount" json:"discount"`
	Stock               string `form:"stock" json:"stock"`
	UsageCrops          string `form:"usage_crops" json:"usage_crops"`
	NutrientComposition string `form:"nutrient_composition" json:"nutrient_composition"`
}

// CartAdd adds Quantity (default 1) of a product.
type CartAdd struct {
	ProductID string `form:"product_id" json:"product_id"`
	Quantity  string `form:"quantity" json:"quantity"`
}

// CartUpdate overwrites a line's quantity; zero removes the line.
type CartUpdate struct {
	CartID   string `form:"cart_id" json:"cart_id"`
	Quantity string `form:"quantity" json:"quantity"`
}

// ImageStore persists uploaded product images.
type ImageStore interface {
	Save(sub string, fh *multipart.FileHeader) (string, error)
	Remove(rel string) error
}

type StoreService interface {
	Products(ctx context.Context) ([]entities.Product, error)
	Product(ctx context.Context, id uint) (*entities.Product, error)

	AddToCart(ctx context.Context, farmerID uint, in CartAdd) error
	UpdateCart(ctx context.Context, farmerID uint, in CartUpdate) error
	Cart(ctx context.Context, farmerID uint) (store.Quote, error)
	Preview(ctx context.Context, farmerID uint) (store.Quote, error)
	Checkout(ctx context.Context, farmerID uint) (*entities.Order, error)
	Orders(ctx context.Context, farmerID uint) ([]entities.Order, error)
	Invoice(ctx context.Context, farmerID, orderID uint) (*entities.Order, error)

	AdminProducts(ctx context.Context) ([]entities.Product, error)
	CreateProduct(ctx context.Context, in ProductForm, image *multipart.FileHeader) (*entities.Product, error)
	UpdateProduct(ctx context.Context, id uint, in ProductForm, image *multipart.FileHeader) (*entities.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}
