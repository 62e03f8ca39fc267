package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmintel/pkg/apperr"
	"farmintel/pkg/scheme/controller"
	"farmintel/pkg/scheme/service"
)

type schemeCtrl struct{ s service.SchemeService }

func New(s service.SchemeService) controller.SchemeController { return &schemeCtrl{s} }

func (h *schemeCtrl) List(c echo.Context) error {
	out, err := h.s.ListForFarmer(c.Request().Context())
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *schemeCtrl) AdminList(c echo.Context) error {
	out, err := h.s.ListForAdmin(c.Request().Context())
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *schemeCtrl) AdminGet(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return apperr.JSON(c, apperr.NotFound("scheme"))
	}
	out, err := h.s.Get(c.Request().Context(), id)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *schemeCtrl) AdminAdd(c echo.Context) error {
	var req service.SchemeForm
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}
	out, err := h.s.Create(c.Request().Context(), req)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *schemeCtrl) AdminEdit(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return apperr.JSON(c, apperr.NotFound("scheme"))
	}
	var req service.SchemeForm
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}
	out, err := h.s.Update(c.Request().Context(), id, req)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *schemeCtrl) AdminDelete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return apperr.JSON(c, apperr.NotFound("scheme"))
	}
	if err := h.s.Delete(c.Request().Context(), id); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Scheme deleted."})
}

func parseID(c echo.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(n), err == nil
}
