package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmintel/pkg/apperr"
	"farmintel/pkg/crop/controller"
	"farmintel/pkg/crop/service"
	"farmintel/pkg/upload"
)

const imagesField = "crop_images"

type cropCtrl struct{ s service.CropService }

func New(s service.CropService) controller.CropController { return &cropCtrl{s} }

func (h *cropCtrl) List(c echo.Context) error {
	out, err := h.s.ListForFarmer(c.Request().Context())
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *cropCtrl) Detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return apperr.JSON(c, apperr.NotFound("crop"))
	}
	out, err := h.s.DetailForFarmer(c.Request().Context(), id)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *cropCtrl) AdminList(c echo.Context) error {
	out, err := h.s.ListForAdmin(c.Request().Context())
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *cropCtrl) AdminGet(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return apperr.JSON(c, apperr.NotFound("crop"))
	}
	out, err := h.s.Get(c.Request().Context(), id)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *cropCtrl) AdminAdd(c echo.Context) error {
	var req service.CropForm
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}
	out, err := h.s.Create(c.Request().Context(), req, upload.FormFiles(c, imagesField))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *cropCtrl) AdminEdit(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return apperr.JSON(c, apperr.NotFound("crop"))
	}
	var req service.CropForm
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}
	out, err := h.s.Update(c.Request().Context(), id, req, upload.FormFiles(c, imagesField))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *cropCtrl) AdminDelete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return apperr.JSON(c, apperr.NotFound("crop"))
	}
	if err := h.s.Delete(c.Request().Context(), id); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Crop deleted."})
}

func (h *cropCtrl) AdminToggle(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return apperr.JSON(c, apperr.NotFound("crop"))
	}
	out, err := h.s.Toggle(c.Request().Context(), id)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func parseID(c echo.Context) (uint, error) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(n), err
}
