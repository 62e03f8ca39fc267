package controller

import "github.com/labstack/echo/v4"

type FinancialController interface {
	List(c echo.Context) error
	Summary(c echo.Context) error
	Get(c echo.Context) error
	Add(c echo.Context) error
	Edit(c echo.Context) error
	Delete(c echo.Context) error
	DownloadCSV(c echo.Context) error
	DownloadXLSX(c echo.Context) error
}
