package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agritrust/pkg/catalog"
	"agritrust/pkg/farmer/controller"
	"agritrust/pkg/farmer/service"
)

type FarmerCtrl struct{ svc service.FarmerService }

func New(svc service.FarmerService) controller.FarmerController { return &FarmerCtrl{svc} }

func (h *FarmerCtrl) Directory(c echo.Context) error {
	crit := catalog.FarmerCriteria{
		Search:     c.QueryParam("search"),
		Categories: c.QueryParams()["category"],
	}
	if v := c.QueryParam("min_rating"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil { crit.MinRating = n }
	}

	entries, categories, err := h.svc.Directory(crit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"farmers":    entries,
		"categories": categories,
		"total":      len(entries),
	})
}

func (h *FarmerCtrl) Profile(c echo.Context) error {
	p, err := h.svc.Profile(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}
