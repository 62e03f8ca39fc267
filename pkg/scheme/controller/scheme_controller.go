package controller

import "github.com/labstack/echo/v4"

type SchemeController interface {
	List(c echo.Context) error
	AdminList(c echo.Context) error
	AdminGet(c echo.Context) error
	AdminAdd(c echo.Context) error
	AdminEdit(c echo.Context) error
	AdminDelete(c echo.Context) error
}
