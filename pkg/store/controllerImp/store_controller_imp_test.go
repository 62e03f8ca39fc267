package controllerImp

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmintel/entities"
	"farmintel/pkg/auth"
	"farmintel/pkg/dbtest"
	"farmintel/pkg/middleware"
	repoImp "farmintel/pkg/store/repositoryImp"
	svcImp "farmintel/pkg/store/serviceImp"
	"farmintel/pkg/upload"
)

type harness struct {
	e        *echo.Echo
	sessions *auth.Sessions
}

func newHarness(t *testing.T) harness {
	t.Helper()
	sessions := auth.NewSessions("secret", time.Hour, false)
	h := New(svcImp.NewStoreService(repoImp.New(dbtest.Open(t)), upload.NewStore(t.TempDir())))

	e := echo.New()
	e.Use(middleware.LoadSession(sessions))
	admin := e.Group("/store/admin", middleware.RequireAdmin())
	admin.GET("", h.AdminList)
	admin.POST("/add", h.AdminAdd)
	admin.GET("/edit/:id", h.AdminGet)
	admin.POST("/edit/:id", h.AdminEdit)
	admin.POST("/delete/:id", h.AdminDelete)

	farmer := e.Group("/store", middleware.RequireFarmer())
	farmer.GET("/", h.List)
	farmer.GET("/product/:id", h.Detail)
	farmer.POST("/cart/add", h.CartAdd)
	farmer.GET("/cart", h.CartView)
	farmer.POST("/cart/update", h.CartUpdate)
	farmer.GET("/checkout", h.CheckoutPreview)
	farmer.POST("/checkout", h.Checkout)
	farmer.GET("/orders", h.Orders)
	farmer.GET("/order/:id", h.Invoice)
	return harness{e: e, sessions: sessions}
}

func (h harness) cookie(t *testing.T, role auth.Role, id uint) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, h.sessions.Issue(rec, auth.Session{Role: role, UserID: id}))
	return rec.Result().Cookies()[0]
}

func (h harness) send(req *http.Request, ck *http.Cookie) *httptest.ResponseRecorder {
	if ck != nil {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, req)
	return rec
}

func (h harness) post(path string, form url.Values, ck *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return h.send(req, ck)
}

func (h harness) get(path string, ck *http.Cookie) *httptest.ResponseRecorder {
	return h.send(httptest.NewRequest(http.MethodGet, path, nil), ck)
}

func TestAdminAddProductWithImage(t *testing.T) {
	h := newHarness(t)
	admin := h.cookie(t, auth.RoleAdmin, 1)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range map[string]string{"name": "Urea", "price": "266.50", "stock": "40", "brand": "IFFCO"} {
		require.NoError(t, w.WriteField(k, v))
	}
	fw, err := w.CreateFormFile(imageField, "urea.PNG")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("png"))
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/store/admin/add", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	rec := h.send(req, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var p entities.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "IFFCO", p.Brand)
	assert.True(t, strings.HasPrefix(p.ImagePath, "uploads/products/"))
	assert.True(t, strings.HasSuffix(p.ImagePath, ".png"))

	rec = h.get("/store/admin/edit/1", admin)
	assert.Equal(t, http.StatusOK, rec.Code)

	// farmers cannot reach admin routes
	rec = h.get("/store/admin", h.cookie(t, auth.RoleFarmer, 2))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get(echo.HeaderLocation))

	rec = h.post("/store/admin/add", url.Values{"name": {"Urea"}, "price": {"10"}, "discount": {"150"}}, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Discount cannot be more than 100."}`, rec.Body.String())
}

func TestCartCheckoutInvoice(t *testing.T) {
	h := newHarness(t)
	admin := h.cookie(t, auth.RoleAdmin, 1)
	ravi := h.cookie(t, auth.RoleFarmer, 2)
	meena := h.cookie(t, auth.RoleFarmer, 3)

	rec := h.post("/store/admin/add", url.Values{"name": {"Urea"}, "price": {"100"}, "discount": {"10"}, "stock": {"5"}}, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = h.post("/store/admin/add", url.Values{"name": {"DAP"}, "price": {"50"}, "stock": {"5"}}, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = h.post("/store/checkout", nil, ravi)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Cart is empty."}`, rec.Body.String())

	require.Equal(t, http.StatusOK, h.post("/store/cart/add", url.Values{"product_id": {"1"}, "quantity": {"2"}}, ravi).Code)
	require.Equal(t, http.StatusOK, h.post("/store/cart/add", url.Values{"product_id": {"2"}}, ravi).Code)

	rec = h.get("/store/checkout", ravi)
	require.Equal(t, http.StatusOK, rec.Code)
	var quote struct {
		Items    []json.RawMessage `json:"items"`
		Subtotal string            `json:"subtotal"`
		GST      string            `json:"gst"`
		Total    string            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.Len(t, quote.Items, 2)
	assert.Equal(t, "230", quote.Subtotal)
	assert.Equal(t, "11.5", quote.GST)
	assert.Equal(t, "241.5", quote.Total)

	rec = h.post("/store/checkout", nil, ravi)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var order entities.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, "Completed", order.Status)
	assert.Len(t, order.Items, 2)

	rec = h.get("/store/cart", ravi)
	assert.Contains(t, rec.Body.String(), `"items":[]`)

	rec = h.get("/store/order/1", ravi)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = h.get("/store/order/1", meena)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Order not found."}`, rec.Body.String())

	rec = h.get("/store/orders", meena)
	assert.Equal(t, http.StatusOK, rec.Code)
	var orders []entities.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	assert.Empty(t, orders)
}

func TestCartUpdateForeignLine(t *testing.T) {
	h := newHarness(t)
	admin := h.cookie(t, auth.RoleAdmin, 1)
	ravi := h.cookie(t, auth.RoleFarmer, 2)
	meena := h.cookie(t, auth.RoleFarmer, 3)

	require.Equal(t, http.StatusCreated, h.post("/store/admin/add", url.Values{"name": {"Urea"}, "price": {"100"}, "stock": {"5"}}, admin).Code)
	require.Equal(t, http.StatusOK, h.post("/store/cart/add", url.Values{"product_id": {"1"}}, ravi).Code)

	rec := h.post("/store/cart/update", url.Values{"cart_id": {"1"}, "quantity": {"3"}}, meena)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = h.post("/store/cart/update", url.Values{"cart_id": {"1"}, "quantity": {"3"}}, ravi)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quantity":3`)

	rec = h.post("/store/cart/add", url.Values{"product_id": {"42"}}, ravi)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Product not found."}`, rec.Body.String())
}
