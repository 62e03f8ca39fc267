package serviceImp

import (
	"context"
	"log"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"farmintel/database"
	"farmintel/entities"
	"farmintel/pkg/apperr"
	"farmintel/pkg/store"
	repo "farmintel/pkg/store/repository"
	"farmintel/pkg/store/service"
	"farmintel/pkg/textutil"
	"farmintel/pkg/upload"
	"farmintel/pkg/validate"
)

const (
	defaultCategory = "Fertilizers"
	productNameMax  = 200
	checkoutTries   = 3
	checkoutBackoff = 50 * time.Millisecond
)

type storeSvc struct {
	r       repo.StoreRepository
	images  service.ImageStore
	backoff time.Duration
}

func NewStoreService(r repo.StoreRepository, images service.ImageStore) service.StoreService {
	return &storeSvc{r: r, images: images, backoff: checkoutBackoff}
}

func (s *storeSvc) Products(ctx context.Context) ([]entities.Product, error) {
	return s.r.ListInStock(ctx)
}

func (s *storeSvc) Product(ctx context.Context, id uint) (*entities.Product, error) {
	return s.r.FindProduct(ctx, id)
}

// ---------- cart ----------

func (s *storeSvc) AddToCart(ctx context.Context, farmerID uint, in service.CartAdd) error {
	productID, ok := parseID(in.ProductID)
	if !ok {
		return apperr.NotFound("product")
	}
	if ok, msg := validate.IntRange(in.Quantity, "Quantity", 1, validate.NoMax, false); !ok {
		return apperr.Validation(msg)
	}
	qty := 1
	if strings.TrimSpace(in.Quantity) != "" {
		qty = validate.ParseInt(in.Quantity)
	}
	if _, err := s.r.FindProduct(ctx, productID); err != nil {
		return err
	}
	return s.r.AddToCart(ctx, farmerID, productID, qty)
}

func (s *storeSvc) UpdateCart(ctx context.Context, farmerID uint, in service.CartUpdate) error {
	cartID, ok := parseID(in.CartID)
	if !ok {
		return apperr.NotFound("cart item")
	}
	if ok, msg := validate.IntRange(in.Quantity, "Quantity", 0, validate.NoMax, true); !ok {
		return apperr.Validation(msg)
	}
	qty := validate.ParseInt(in.Quantity)
	if qty == 0 {
		return s.r.RemoveCartLine(ctx, farmerID, cartID)
	}
	return s.r.SetCartQuantity(ctx, farmerID, cartID, qty)
}

func (s *storeSvc) Cart(ctx context.Context, farmerID uint) (store.Quote, error) {
	lines, err := s.r.CartLines(ctx, farmerID)
	if err != nil {
		return store.Quote{}, err
	}
	return store.Price(lines), nil
}

// Preview prices the cart for confirmation without touching stock.
func (s *storeSvc) Preview(ctx context.Context, farmerID uint) (store.Quote, error) {
	q, err := s.Cart(ctx, farmerID)
	if err != nil {
		return store.Quote{}, err
	}
	if err := store.CheckStock(q.Lines); err != nil {
		return store.Quote{}, err
	}
	return q, nil
}

// Checkout places the order. Storage lock conflicts rerun the whole
// transaction; everything else is returned as is.
func (s *storeSvc) Checkout(ctx context.Context, farmerID uint) (*entities.Order, error) {
	var (
		o   *entities.Order
		err error
	)
	for attempt := 1; ; attempt++ {
		o, err = s.placeOrder(ctx, farmerID)
		if err == nil || !database.IsTransient(err) || attempt == checkoutTries {
			break
		}
		log.Printf("[store] checkout farmer=%d attempt %d: %v", farmerID, attempt, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * s.backoff):
		}
	}
	if err != nil {
		return nil, err
	}
	return s.r.FindOrder(ctx, farmerID, o.ID)
}

func (s *storeSvc) placeOrder(ctx context.Context, farmerID uint) (*entities.Order, error) {
	var o *entities.Order
	err := s.r.Transaction(ctx, func(tx repo.StoreRepository) error {
		lines, err := tx.CartLines(ctx, farmerID)
		if err != nil {
			return err
		}
		if err := store.CheckStock(lines); err != nil {
			return err
		}
		q := store.Price(lines)
		sub, gst, total := q.Settle()

		o = &entities.Order{
			FarmerID: farmerID,
			Subtotal: sub,
			GST:      gst,
			Total:    total,
			Status:   entities.OrderStatusCompleted,
		}
		for _, l := range q.Lines {
			o.Items = append(o.Items, entities.OrderItem{
				ProductID:    l.ProductID,
				ProductName:  l.Name,
				Quantity:     l.Quantity,
				PricePerUnit: store.Money(l.UnitPrice),
			})
		}
		if err := tx.CreateOrder(ctx, o); err != nil {
			return err
		}
		for _, l := range q.Lines {
			ok, err := tx.DecrementStock(ctx, l.ProductID, l.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return store.InsufficientStock(l.Name)
			}
		}
		return tx.ClearCart(ctx, farmerID)
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *storeSvc) Orders(ctx context.Context, farmerID uint) ([]entities.Order, error) {
	return s.r.ListOrders(ctx, farmerID)
}

func (s *storeSvc) Invoice(ctx context.Context, farmerID, orderID uint) (*entities.Order, error) {
	return s.r.FindOrder(ctx, farmerID, orderID)
}

// ---------- admin ----------

func (s *storeSvc) AdminProducts(ctx context.Context) ([]entities.Product, error) {
	return s.r.ListProducts(ctx)
}

func (s *storeSvc) CreateProduct(ctx context.Context, in service.ProductForm, image *multipart.FileHeader) (*entities.Product, error) {
	p, err := fromForm(in)
	if err != nil {
		return nil, err
	}
	if p.ImagePath, err = s.images.Save(upload.Products, image); err != nil {
		return nil, err
	}
	if err := s.r.CreateProduct(ctx, p); err != nil {
		s.discard(p.ImagePath)
		return nil, err
	}
	return s.r.FindProduct(ctx, p.ID)
}

// UpdateProduct keeps the current image unless a new one is uploaded.
func (s *storeSvc) UpdateProduct(ctx context.Context, id uint, in service.ProductForm, image *multipart.FileHeader) (*entities.Product, error) {
	p, err := fromForm(in)
	if err != nil {
		return nil, err
	}
	cur, err := s.r.FindProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	p.ID = id
	fresh, err := s.images.Save(upload.Products, image)
	if err != nil {
		return nil, err
	}
	p.ImagePath = cur.ImagePath
	if fresh != "" {
		p.ImagePath = fresh
	}
	if err := s.r.UpdateProduct(ctx, p); err != nil {
		s.discard(fresh)
		return nil, err
	}
	if fresh != "" {
		s.discard(cur.ImagePath)
	}
	return s.r.FindProduct(ctx, id)
}

func (s *storeSvc) DeleteProduct(ctx context.Context, id uint) error {
	image, err := s.r.DeleteProduct(ctx, id)
	if err != nil {
		return err
	}
	s.discard(image)
	return nil
}

func (s *storeSvc) discard(rel string) {
	if rel == "" {
		return
	}
	if err := s.images.Remove(rel); err != nil {
		log.Printf("[store] remove image %s: %v", rel, err)
	}
}

func fromForm(in service.ProductForm) (*entities.Product, error) {
	if ok, msg := validate.First(
		validate.C(validate.RequiredString(in.Name, "Product name", 1, productNameMax)),
		validate.C(validate.NonNegative(in.Price, "Price", true)),
		validate.C(validate.DecimalRange(in.Discount, "Discount", 0, 100, false)),
		validate.C(validate.IntRange(in.Stock, "Stock", 0, validate.NoMax, false)),
	); !ok {
		return nil, apperr.Validation(msg)
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = defaultCategory
	}
	return &entities.Product{
		Name:                strings.TrimSpace(in.Name),
		Category:            category,
		Brand:               strings.TrimSpace(in.Brand),
		Description:         textutil.PlainText(in.Description),
		Price:               validate.ParseDecimal(in.Price),
		Discount:            validate.ParseDecimal(in.Discount),
		Stock:               validate.ParseInt(in.Stock),
		UsageCrops:          strings.TrimSpace(in.UsageCrops),
		NutrientComposition: strings.TrimSpace(in.NutrientComposition),
	}, nil
}

func parseID(v string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
	return uint(n), err == nil && n > 0
}
