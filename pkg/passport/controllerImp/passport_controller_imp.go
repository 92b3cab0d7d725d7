package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agritrust/entities"
	"agritrust/pkg/passport/controller"
	"agritrust/pkg/passport/service"
)

type PassportCtrl struct{ svc service.PassportService }

func New(svc service.PassportService) controller.PassportController { return &PassportCtrl{svc} }

func (h *PassportCtrl) Own(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	p, err := h.svc.Own(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PassportCtrl) Update(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var in entities.Passport
	if err := c.Bind(&in); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	p, err := h.svc.Update(uid, &in)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PassportCtrl) Verify(c echo.Context) error {
	v, err := h.svc.Verify(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, v)
}

func (h *PassportCtrl) QR(c echo.Context) error {
	size := 256
	if v := c.QueryParam("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 { size = n }
	}
	png, err := h.svc.QRPNG(c.Param("id"), size)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.Blob(http.StatusOK, "image/png", png)
}
