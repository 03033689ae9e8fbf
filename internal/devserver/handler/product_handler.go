package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gadgetstore/storefront/internal/core/domain"
	coreports "github.com/gadgetstore/storefront/internal/core/ports"
	"github.com/gadgetstore/storefront/internal/devserver/metrics"
	"github.com/gadgetstore/storefront/internal/devserver/ports"
)

// ProductHandler handles HTTP requests for catalogue operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// upsertProductRequest is the body of both create and update.
type upsertProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image"       validate:"required,url"`
}

func (r upsertProductRequest) toInput() coreports.ProductInput {
	return coreports.ProductInput{
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Image:       r.Image,
	}
}

// List handles GET /products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  map[string]string
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if products == nil {
		// The client decodes a JSON array; an empty catalogue is [], not null.
		products = []domain.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Create handles POST /products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      upsertProductRequest  true  "Product fields"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req upsertProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		metrics.ProductMutationsTotal.WithLabelValues("create", "error").Inc()
		return err
	}
	metrics.ProductMutationsTotal.WithLabelValues("create", "success").Inc()
	return c.JSON(http.StatusCreated, p)
}

// Update handles PUT /products/:id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      upsertProductRequest  true  "Product fields"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req upsertProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		metrics.ProductMutationsTotal.WithLabelValues("update", "error").Inc()
		return err
	}
	metrics.ProductMutationsTotal.WithLabelValues("update", "success").Inc()
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		metrics.ProductMutationsTotal.WithLabelValues("delete", "error").Inc()
		return err
	}
	metrics.ProductMutationsTotal.WithLabelValues("delete", "success").Inc()
	return c.NoContent(http.StatusNoContent)
}
