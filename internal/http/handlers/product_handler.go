package handlers

import (
	"errors"

	"ajir/internal/domain"
	applog "ajir/internal/log"
	"ajir/internal/services"
	"ajir/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// GET /products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Catalog.List()
	if err != nil {
		applog.Error(c, "products.list.fail", err, nil)
		return serverError(c)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(products)
}

// GET /products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return message(c, fiber.StatusNotFound, "Product not found")
	}
	p, err := h.Catalog.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return message(c, fiber.StatusNotFound, "Product not found")
		}
		applog.Error(c, "products.get.fail", err, map[string]any{"product": id})
		return serverError(c)
	}
	return c.JSON(p)
}

// GET /products/category/:category
func (h *ProductHandler) ByCategory(c *fiber.Ctx) error {
	category, _ := validate.ID(c.Params("category"))
	products, err := h.Catalog.ListByCategory(category)
	if err != nil {
		applog.Error(c, "products.category.fail", err, map[string]any{"category": category})
		return serverError(c)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(products)
}
