package controllerImp

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmintel/pkg/apperr"
	"farmintel/pkg/financial"
	"farmintel/pkg/financial/controller"
	"farmintel/pkg/financial/service"
	"farmintel/pkg/middleware"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type financialCtrl struct{ s service.FinancialService }

func New(s service.FinancialService) controller.FinancialController { return &financialCtrl{s} }

func (h *financialCtrl) List(c echo.Context) error {
	entries, err := h.s.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"records": entries,
		"summary": financial.Summarize(entries),
	})
}

func (h *financialCtrl) Summary(c echo.Context) error {
	out, err := h.s.Summary(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *financialCtrl) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return apperr.JSON(c, apperr.NotFound("record"))
	}
	out, err := h.s.Get(c.Request().Context(), middleware.UserID(c), id)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *financialCtrl) Add(c echo.Context) error {
	var req service.RecordForm
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}
	out, err := h.s.Add(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *financialCtrl) Edit(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return apperr.JSON(c, apperr.NotFound("record"))
	}
	var req service.RecordForm
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}
	out, err := h.s.Edit(c.Request().Context(), middleware.UserID(c), id, req)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *financialCtrl) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return apperr.JSON(c, apperr.NotFound("record"))
	}
	if err := h.s.Delete(c.Request().Context(), middleware.UserID(c), id); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Record deleted."})
}

func (h *financialCtrl) DownloadCSV(c echo.Context) error {
	return h.download(c, financial.CSVFilename, "text/csv; charset=utf-8", h.s.ExportCSV)
}

func (h *financialCtrl) DownloadXLSX(c echo.Context) error {
	return h.download(c, financial.XLSXFilename, mimeXLSX, h.s.ExportXLSX)
}

type exportFunc func(ctx context.Context, farmerID uint, w io.Writer) error

// download buffers the file so a failed export still gets a JSON error.
func (h *financialCtrl) download(c echo.Context, name, mime string, export exportFunc) error {
	var buf bytes.Buffer
	if err := export(c.Request().Context(), middleware.UserID(c), &buf); err != nil {
		return apperr.JSON(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+name)
	return c.Blob(http.StatusOK, mime, buf.Bytes())
}

func parseID(c echo.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(n), err == nil
}
