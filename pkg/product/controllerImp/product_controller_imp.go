package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"agritrust/entities"
	"agritrust/pkg/catalog"
	"agritrust/pkg/form"
	"agritrust/pkg/product/controller"
	"agritrust/pkg/product/service"
)

type ProductCtrl struct{ svc service.ProductService }

func New(svc service.ProductService) controller.ProductController { return &ProductCtrl{svc} }

type listItem struct {
	entities.ProductView
	// edit/delete controls render only for the owning farmer
	Editable bool `json:"editable"`
}

func (h *ProductCtrl) List(c echo.Context) error {
	crit := catalog.ProductCriteria{
		Search:     c.QueryParam("search"),
		Categories: c.QueryParams()["category"],
	}
	if v := c.QueryParam("min_price"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil { crit.MinPrice = n }
	}
	if v := c.QueryParam("max_price"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil { crit.MaxPrice = n }
	}
	crit.OrganicOnly = c.QueryParam("organic") == "true"

	res, err := h.svc.List(c.Request().Context(), crit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	uid, _ := c.Get("uid").(string)
	role, _ := c.Get("role").(string)
	items := make([]listItem, len(res.Products))
	for i, p := range res.Products {
		items[i] = listItem{ProductView: p, Editable: role == entities.RoleFarmer && p.FarmerID == uid}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"products":   items,
		"categories": res.Categories,
		"total":      res.Total,
	})
}

type productReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       any    `json:"price"` // string or number, validated downstream
	Category    string `json:"category"`
	IsOrganic   bool   `json:"is_organic"`
	Image       string `json:"image"`
}

func (r productReq) values() form.Values {
	return form.Values{
		"name":        r.Name,
		"description": r.Description,
		"price":       r.Price,
		"category":    strings.TrimSpace(r.Category),
		"isOrganic":   r.IsOrganic,
		"image":       r.Image,
	}
}

func (h *ProductCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var req productReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	errs, err := h.svc.Create(c.Request().Context(), uid, req.values())
	if errs != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": errs})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{"status": "created"})
}

func (h *ProductCtrl) Update(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var req productReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	errs, err := h.svc.Update(c.Request().Context(), uid, c.Param("id"), req.values())
	if errs != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": errs})
	}
	if err != nil {
		return h.mutationError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

func (h *ProductCtrl) Delete(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if err := h.svc.Delete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return h.mutationError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ProductCtrl) Export(c echo.Context) error {
	data, err := h.svc.ExportXLSX(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="agritrust-catalog.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *ProductCtrl) mutationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
