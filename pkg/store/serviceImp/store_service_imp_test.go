package serviceImp

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmintel/entities"
	"farmintel/pkg/apperr"
	"farmintel/pkg/dbtest"
	"farmintel/pkg/store"
	repo "farmintel/pkg/store/repository"
	repoImp "farmintel/pkg/store/repositoryImp"
	"farmintel/pkg/store/service"
	"farmintel/pkg/upload"
)

const (
	ravi  uint = 1
	meena uint = 2
)

type fixture struct {
	db  *gorm.DB
	svc service.StoreService
}

func newFixture(t *testing.T) fixture {
	db := dbtest.Open(t)
	return fixture{db: db, svc: NewStoreService(repoImp.New(db), upload.NewStore(t.TempDir()))}
}

func (f fixture) product(t *testing.T, name, price, discount, stock string) *entities.Product {
	t.Helper()
	p, err := f.svc.CreateProduct(context.Background(), service.ProductForm{
		Name: name, Price: price, Discount: discount, Stock: stock,
	}, nil)
	require.NoError(t, err)
	return p
}

func (f fixture) add(t *testing.T, farmerID uint, p *entities.Product, qty string) {
	t.Helper()
	require.NoError(t, f.svc.AddToCart(context.Background(), farmerID, service.CartAdd{
		ProductID: idStr(p.ID), Quantity: qty,
	}))
}

func (f fixture) stock(t *testing.T, id uint) int {
	t.Helper()
	var p entities.Product
	require.NoError(t, f.db.First(&p, id).Error)
	return p.Stock
}

func idStr(id uint) string { return strconv.FormatUint(uint64(id), 10) }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAddToCartIncrementsExistingLine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	urea := f.product(t, "Urea", "100", "10", "10")

	f.add(t, ravi, urea, "2")
	f.add(t, ravi, urea, "")
	f.add(t, ravi, urea, "3")

	q, err := f.svc.Cart(ctx, ravi)
	require.NoError(t, err)
	require.Len(t, q.Lines, 1)
	assert.Equal(t, 6, q.Lines[0].Quantity)
	assert.Equal(t, "Urea", q.Lines[0].Name)
	assert.True(t, q.Lines[0].LineTotal.Equal(dec("540")))

	var n int64
	require.NoError(t, f.db.Model(&entities.CartItem{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	err = f.svc.AddToCart(ctx, ravi, service.CartAdd{ProductID: idStr(urea.ID), Quantity: "0"})
	assert.EqualError(t, err, "Quantity must be at least 1.")
	err = f.svc.AddToCart(ctx, ravi, service.CartAdd{ProductID: "999", Quantity: "1"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	err = f.svc.AddToCart(ctx, ravi, service.CartAdd{ProductID: "abc"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// stock is untouched until checkout
	assert.Equal(t, 10, f.stock(t, urea.ID))
}

func TestUpdateCartOverwritesOrRemoves(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	urea := f.product(t, "Urea", "100", "", "10")
	f.add(t, ravi, urea, "4")

	q, err := f.svc.Cart(ctx, ravi)
	require.NoError(t, err)
	line := idStr(q.Lines[0].CartID)

	require.NoError(t, f.svc.UpdateCart(ctx, ravi, service.CartUpdate{CartID: line, Quantity: "2"}))
	q, err = f.svc.Cart(ctx, ravi)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Lines[0].Quantity)

	// same quantity again is still a success
	require.NoError(t, f.svc.UpdateCart(ctx, ravi, service.CartUpdate{CartID: line, Quantity: "2"}))

	err = f.svc.UpdateCart(ctx, meena, service.CartUpdate{CartID: line, Quantity: "9"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	err = f.svc.UpdateCart(ctx, meena, service.CartUpdate{CartID: line, Quantity: "0"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	err = f.svc.UpdateCart(ctx, ravi, service.CartUpdate{CartID: line, Quantity: "-1"})
	assert.True(t, apperr.IsValidation(err))

	require.NoError(t, f.svc.UpdateCart(ctx, ravi, service.CartUpdate{CartID: line, Quantity: "0"}))
	q, err = f.svc.Cart(ctx, ravi)
	require.NoError(t, err)
	assert.Empty(t, q.Lines)
}

func TestCheckoutPlacesOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.product(t, "Urea", "100", "10", "5")
	b := f.product(t, "DAP", "50", "0", "5")
	f.add(t, ravi, a, "2")
	f.add(t, ravi, b, "1")

	q, err := f.svc.Preview(ctx, ravi)
	require.NoError(t, err)
	assert.True(t, q.Subtotal.Equal(dec("230")))
	assert.True(t, q.GST.Equal(dec("11.5")))
	assert.True(t, q.Total.Equal(dec("241.5")))
	assert.Equal(t, 5, f.stock(t, a.ID))

	o, err := f.svc.Checkout(ctx, ravi)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusCompleted, o.Status)
	assert.True(t, o.Subtotal.Equal(dec("230")), o.Subtotal.String())
	assert.True(t, o.GST.Equal(dec("11.5")), o.GST.String())
	assert.True(t, o.Total.Equal(dec("241.5")), o.Total.String())
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Urea", o.Items[0].ProductName)
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.True(t, o.Items[0].PricePerUnit.Equal(dec("90")))

	assert.Equal(t, 3, f.stock(t, a.ID))
	assert.Equal(t, 4, f.stock(t, b.ID))
	cart, err := f.svc.Cart(ctx, ravi)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	// a later price change leaves the placed order alone
	_, err = f.svc.UpdateProduct(ctx, a.ID, service.ProductForm{Name: "Urea", Price: "500", Stock: "3"}, nil)
	require.NoError(t, err)
	inv, err := f.svc.Invoice(ctx, ravi, o.ID)
	require.NoError(t, err)
	assert.True(t, inv.Items[0].PricePerUnit.Equal(dec("90")))
	assert.True(t, inv.Total.Equal(dec("241.5")))
}

func TestCheckoutEmptyCartCreatesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Preview(ctx, ravi)
	assert.ErrorIs(t, err, store.ErrEmptyCart)
	for i := 0; i < 2; i++ {
		_, err = f.svc.Checkout(ctx, ravi)
		assert.ErrorIs(t, err, store.ErrEmptyCart)
	}

	var n int64
	require.NoError(t, f.db.Model(&entities.Order{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCheckoutInsufficientStockRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.product(t, "Urea", "100", "", "5")
	b := f.product(t, "Neem Oil", "250", "", "1")
	f.add(t, ravi, a, "2")
	f.add(t, ravi, b, "2")

	_, err := f.svc.Preview(ctx, ravi)
	assert.EqualError(t, err, "Insufficient stock for Neem Oil.")
	_, err = f.svc.Checkout(ctx, ravi)
	assert.EqualError(t, err, "Insufficient stock for Neem Oil.")

	assert.Equal(t, 5, f.stock(t, a.ID))
	assert.Equal(t, 1, f.stock(t, b.ID))
	q, err := f.svc.Cart(ctx, ravi)
	require.NoError(t, err)
	assert.Len(t, q.Lines, 2)
	var n int64
	require.NoError(t, f.db.Model(&entities.OrderItem{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestConcurrentCheckoutOfLastUnit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	last := f.product(t, "Sprayer", "1200", "", "1")
	f.add(t, ravi, last, "1")
	f.add(t, meena, last, "1")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, farmer := range []uint{ravi, meena} {
		wg.Add(1)
		go func(i int, farmer uint) {
			defer wg.Done()
			_, errs[i] = f.svc.Checkout(ctx, farmer)
		}(i, farmer)
	}
	wg.Wait()

	var ok, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case apperr.IsValidation(err):
			assert.EqualError(t, err, "Insufficient stock for Sprayer.")
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, 0, f.stock(t, last.ID))

	var n int64
	require.NoError(t, f.db.Model(&entities.Order{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

// soldOutRepo hands checkout a transaction in which every stock decrement
// loses the race, as when another order took the units after the cart was read.
type soldOutRepo struct{ repo.StoreRepository }

func (r soldOutRepo) Transaction(ctx context.Context, fn func(repo.StoreRepository) error) error {
	return r.StoreRepository.Transaction(ctx, func(tx repo.StoreRepository) error {
		return fn(soldOutTx{tx})
	})
}

type soldOutTx struct{ repo.StoreRepository }

func (soldOutTx) DecrementStock(context.Context, uint, int) (bool, error) { return false, nil }

func TestCheckoutLosingStockRaceRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.product(t, "Urea", "100", "", "5")
	b := f.product(t, "Sprayer", "1200", "", "1")
	f.add(t, ravi, a, "2")
	f.add(t, ravi, b, "1")

	svc := NewStoreService(soldOutRepo{repoImp.New(f.db)}, upload.NewStore(t.TempDir()))
	_, err := svc.Checkout(ctx, ravi)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.EqualError(t, err, "Insufficient stock for Urea.")

	var orders, items int64
	require.NoError(t, f.db.Model(&entities.Order{}).Count(&orders).Error)
	require.NoError(t, f.db.Model(&entities.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)

	assert.Equal(t, 5, f.stock(t, a.ID))
	assert.Equal(t, 1, f.stock(t, b.ID))
	q, err := f.svc.Cart(ctx, ravi)
	require.NoError(t, err)
	require.Len(t, q.Lines, 2)
	assert.Equal(t, 2, q.Lines[0].Quantity)
}

// lockedRepo fails the first fails transactions with a SQLite busy error.
type lockedRepo struct {
	repo.StoreRepository
	fails int
	calls int
}

func (r *lockedRepo) Transaction(ctx context.Context, fn func(repo.StoreRepository) error) error {
	r.calls++
	if r.calls <= r.fails {
		return errors.New("database is locked (5) (SQLITE_BUSY)")
	}
	return r.StoreRepository.Transaction(ctx, fn)
}

func lockedService(t *testing.T, f fixture, fails int) (service.StoreService, *lockedRepo) {
	t.Helper()
	r := &lockedRepo{StoreRepository: repoImp.New(f.db), fails: fails}
	svc := NewStoreService(r, upload.NewStore(t.TempDir()))
	svc.(*storeSvc).backoff = time.Millisecond
	return svc, r
}

func TestCheckoutRetriesLockConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "Urea", "100", "", "5")
	f.add(t, ravi, p, "1")

	svc, r := lockedService(t, f, 2)
	o, err := svc.Checkout(ctx, ravi)
	require.NoError(t, err)
	assert.Equal(t, 3, r.calls)
	assert.True(t, o.Total.Equal(dec("105")), o.Total.String())
	assert.Equal(t, 4, f.stock(t, p.ID))

	f.add(t, ravi, p, "1")
	svc, r = lockedService(t, f, checkoutTries)
	_, err = svc.Checkout(ctx, ravi)
	assert.ErrorContains(t, err, "database is locked")
	assert.Equal(t, checkoutTries, r.calls)
	assert.Equal(t, 4, f.stock(t, p.ID))
}

func TestCheckoutRetryStopsOnCancel(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Urea", "100", "", "5")
	f.add(t, ravi, p, "1")

	svc, r := lockedService(t, f, checkoutTries)
	svc.(*storeSvc).backoff = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Checkout(ctx, ravi)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, r.calls)
}

func TestOrdersAreScopedToOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "Urea", "100", "", "10")

	f.add(t, ravi, p, "1")
	first, err := f.svc.Checkout(ctx, ravi)
	require.NoError(t, err)
	f.add(t, ravi, p, "2")
	second, err := f.svc.Checkout(ctx, ravi)
	require.NoError(t, err)

	orders, err := f.svc.Orders(ctx, ravi)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)

	_, err = f.svc.Invoice(ctx, meena, first.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, missing := f.svc.Invoice(ctx, meena, 999)
	assert.Equal(t, missing.Error(), err.Error())

	mine, err := f.svc.Orders(ctx, meena)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestProductAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.CreateProduct(ctx, service.ProductForm{Name: "Urea", Price: "266.50", Stock: "0"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Fertilizers", p.Category)
	assert.True(t, p.Discount.IsZero())

	// out of stock items are hidden from farmers only
	list, err := f.svc.Products(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	all, err := f.svc.AdminProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	cases := []struct {
		form service.ProductForm
		msg  string
	}{
		{service.ProductForm{Name: " ", Price: "1"}, "Product name is required."},
		{service.ProductForm{Name: "Urea"}, "Price is required."},
		{service.ProductForm{Name: "Urea", Price: "-1"}, "Price cannot be negative."},
		{service.ProductForm{Name: "Urea", Price: "1", Discount: "101"}, "Discount cannot be more than 100."},
		{service.ProductForm{Name: "Urea", Price: "1", Stock: "-3"}, "Stock must be at least 0."},
	}
	for _, tc := range cases {
		_, err := f.svc.CreateProduct(ctx, tc.form, nil)
		assert.EqualError(t, err, tc.msg)
	}

	_, err = f.svc.UpdateProduct(ctx, 999, service.ProductForm{Name: "Ghost", Price: "1"}, nil)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteProductClearsCarts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "Urea", "100", "", "10")
	keep := f.product(t, "DAP", "50", "", "10")
	f.add(t, ravi, p, "1")
	f.add(t, meena, p, "2")
	f.add(t, meena, keep, "1")

	require.NoError(t, f.svc.DeleteProduct(ctx, p.ID))

	var n int64
	require.NoError(t, f.db.Model(&entities.CartItem{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
	assert.ErrorIs(t, f.svc.DeleteProduct(ctx, p.ID), apperr.ErrNotFound)
	_, err := f.svc.Product(ctx, p.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
