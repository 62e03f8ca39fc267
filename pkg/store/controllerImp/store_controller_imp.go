package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmintel/pkg/apperr"
	"farmintel/pkg/middleware"
	"farmintel/pkg/store/controller"
	"farmintel/pkg/store/service"
	"farmintel/pkg/upload"
)

const imageField = "product_image"

type storeCtrl struct{ s service.StoreService }

func New(s service.StoreService) controller.StoreController { return &storeCtrl{s} }

func (h *storeCtrl) List(c echo.Context) error {
	out, err := h.s.Products(c.Request().Context())
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *storeCtrl) Detail(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return apperr.JSON(c, apperr.NotFound("product"))
	}
	out, err := h.s.Product(c.Request().Context(), id)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *storeCtrl) CartAdd(c echo.Context) error {
	var req service.CartAdd
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}
	if err := h.s.AddToCart(c.Request().Context(), middleware.UserID(c), req); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Added to cart."})
}

func (h *storeCtrl) CartView(c echo.Context) error {
	out, err := h.s.Cart(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *storeCtrl) CartUpdate(c echo.Context) error {
	var req service.CartUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}
	if err := h.s.UpdateCart(c.Request().Context(), middleware.UserID(c), req); err != nil {
		return apperr.JSON(c, err)
	}
	return h.CartView(c)
}

func (h *storeCtrl) CheckoutPreview(c echo.Context) error {
	out, err := h.s.Preview(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *storeCtrl) Checkout(c echo.Context) error {
	out, err := h.s.Checkout(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *storeCtrl) Orders(c echo.Context) error {
	out, err := h.s.Orders(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *storeCtrl) Invoice(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return apperr.JSON(c, apperr.NotFound("order"))
	}
	out, err := h.s.Invoice(c.Request().Context(), middleware.UserID(c), id)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *storeCtrl) AdminList(c echo.Context) error {
	out, err := h.s.AdminProducts(c.Request().Context())
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *storeCtrl) AdminGet(c echo.Context) error { return h.Detail(c) }

func (h *storeCtrl) AdminAdd(c echo.Context) error {
	var req service.ProductForm
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}
	out, err := h.s.CreateProduct(c.Request().Context(), req, upload.FormFile(c, imageField))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *storeCtrl) AdminEdit(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return apperr.JSON(c, apperr.NotFound("product"))
	}
	var req service.ProductForm
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}
	out, err := h.s.UpdateProduct(c.Request().Context(), id, req, upload.FormFile(c, imageField))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *storeCtrl) AdminDelete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return apperr.JSON(c, apperr.NotFound("product"))
	}
	if err := h.s.DeleteProduct(c.Request().Context(), id); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted."})
}

func parseID(c echo.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(n), err == nil
}
