package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmintel/entities"
	"farmintel/pkg/apperr"
	"farmintel/pkg/store"
	"farmintel/pkg/store/repository"
)

var editableProduct = []string{
	"name", "category", "brand", "description", "price", "discount",
	"stock", "image_path", "usage_crops", "nutrient_composition", "updated_at",
}

type storeRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.StoreRepository { return &storeRepo{db} }

func (r *storeRepo) Transaction(ctx context.Context, fn func(repository.StoreRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&storeRepo{tx})
	})
}

// ---------- products ----------

func (r *storeRepo) ListInStock(ctx context.Context) ([]entities.Product, error) {
	var out []entities.Product
	err := r.db.WithContext(ctx).Where("stock > 0").Order("name ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *storeRepo) ListProducts(ctx context.Context) ([]entities.Product, error) {
	var out []entities.Product
	err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *storeRepo) FindProduct(ctx context.Context, id uint) (*entities.Product, error) {
	var p entities.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFound(err, "product")
	}
	return &p, nil
}

func (r *storeRepo) CreateProduct(ctx context.Context, p *entities.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *storeRepo) UpdateProduct(ctx context.Context, p *entities.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&entities.Product{}, p.ID).Error; err != nil {
			return notFound(err, "product")
		}
		return tx.Model(&entities.Product{ID: p.ID}).Select(editableProduct).Updates(p).Error
	})
}

func (r *storeRepo) DeleteProduct(ctx context.Context, id uint) (string, error) {
	var image string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p entities.Product
		if err := tx.Select("id", "image_path").First(&p, id).Error; err != nil {
			return notFound(err, "product")
		}
		image = p.ImagePath
		if err := tx.Where("product_id = ?", id).Delete(&entities.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Product{}, id).Error
	})
	return image, err
}

// ---------- cart ----------

// AddToCart inserts the line or adds qty to an existing one in a single
// statement; the unique (farmer_id, product_id) index picks the branch.
func (r *storeRepo) AddToCart(ctx context.Context, farmerID, productID uint, qty int) error {
	line := entities.CartItem{FarmerID: farmerID, ProductID: productID, Quantity: qty}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "farmer_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{"quantity": gorm.Expr("cart.quantity + ?", qty)}),
	}).Create(&line).Error
}

func (r *storeRepo) SetCartQuantity(ctx context.Context, farmerID, cartID uint, qty int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ownedLine(tx, farmerID, cartID); err != nil {
			return err
		}
		return tx.Model(&entities.CartItem{}).Where("id = ?", cartID).Update("quantity", qty).Error
	})
}

func (r *storeRepo) RemoveCartLine(ctx context.Context, farmerID, cartID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND farmer_id = ?", cartID, farmerID).Delete(&entities.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("cart item")
	}
	return nil
}

func ownedLine(tx *gorm.DB, farmerID, cartID uint) error {
	err := tx.Select("id").Where("id = ? AND farmer_id = ?", cartID, farmerID).First(&entities.CartItem{}).Error
	return notFound(err, "cart item")
}

func (r *storeRepo) CartLines(ctx context.Context, farmerID uint) ([]store.Line, error) {
	var out []store.Line
	err := r.db.WithContext(ctx).Table("cart AS c").
		Select("c.id AS cart_id, c.product_id, c.quantity, p.name, p.price, p.discount, p.stock, p.image_path").
		Joins("JOIN products p ON p.id = c.product_id").
		Where("c.farmer_id = ?", farmerID).
		Order("c.id ASC").
		Scan(&out).Error
	return out, err
}

func (r *storeRepo) ClearCart(ctx context.Context, farmerID uint) error {
	return r.db.WithContext(ctx).Where("farmer_id = ?", farmerID).Delete(&entities.CartItem{}).Error
}

// ---------- orders ----------

// CreateOrder inserts o and its Items.
func (r *storeRepo) CreateOrder(ctx context.Context, o *entities.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *storeRepo) DecrementStock(ctx context.Context, productID uint, qty int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&entities.Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *storeRepo) ListOrders(ctx context.Context, farmerID uint) ([]entities.Order, error) {
	var out []entities.Order
	err := r.db.WithContext(ctx).Where("farmer_id = ?", farmerID).
		Order("order_date DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *storeRepo) FindOrder(ctx context.Context, farmerID, id uint) (*entities.Order, error) {
	var o entities.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("id = ? AND farmer_id = ?", id, farmerID).
		First(&o).Error
	if err != nil {
		return nil, notFound(err, "order")
	}
	return &o, nil
}

func notFound(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(entity)
	}
	return err
}
