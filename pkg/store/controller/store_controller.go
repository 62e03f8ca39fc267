package controller

import "github.com/labstack/echo/v4"

type StoreController interface {
	// farmer
	List(c echo.Context) error
	Detail(c echo.Context) error
	CartAdd(c echo.Context) error
	CartView(c echo.Context) error
	CartUpdate(c echo.Context) error
	CheckoutPreview(c echo.Context) error
	Checkout(c echo.Context) error
	Orders(c echo.Context) error
	Invoice(c echo.Context) error

	// admin
	AdminList(c echo.Context) error
	AdminGet(c echo.Context) error
	AdminAdd(c echo.Context) error
	AdminEdit(c echo.Context) error
	AdminDelete(c echo.Context) error
}
