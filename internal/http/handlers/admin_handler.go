package handlers

import (
	"errors"

	"ajir/internal/domain"
	applog "ajir/internal/log"
	"ajir/internal/services"
	"ajir/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler covers the catalog mutations behind the /admin/* paths.
type AdminHandler struct {
	Catalog *services.CatalogService
}

type addProductRequest struct {
	Category    string   `json:"category"`
	RentalPlace string   `json:"rentalPlace"`
	Description string   `json:"description"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
	Image       string   `json:"image"`
}

// POST /admin/add-product
func (h *AdminHandler) AddProduct(c *fiber.Ctx) error {
	var req addProductRequest
	if err := c.BodyParser(&req); err != nil {
		return message(c, fiber.StatusBadRequest, "Missing fields")
	}

	category, catOK := validate.Required(req.Category)
	place, placeOK := validate.Required(req.RentalPlace)
	if !catOK || !placeOK || req.Quantity == nil || req.Price == nil ||
		!validate.Qty(*req.Quantity) || !validate.Price(*req.Price) {
		applog.Security(c, "admin.product.add.fail", map[string]any{"reason": "missing_fields"})
		return message(c, fiber.StatusBadRequest, "Missing fields")
	}

	p, err := h.Catalog.Create(domain.Product{
		Category:    category,
		RentalPlace: place,
		Description: req.Description,
		Quantity:    *req.Quantity,
		Price:       *req.Price,
		Image:       req.Image,
	})
	if err != nil {
		applog.Error(c, "admin.product.add.fail", err, nil)
		return serverError(c)
	}

	applog.Audit(c, "admin.product.add", map[string]any{"product": p.ID})
	return c.JSON(fiber.Map{"message": "Product added successfully!", "product": p})
}

// PUT /admin/update-product/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return message(c, fiber.StatusNotFound, "Product not found")
	}

	var patch services.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return message(c, fiber.StatusBadRequest, "Missing fields")
	}

	p, err := h.Catalog.Update(id, patch)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return message(c, fiber.StatusNotFound, "Product not found")
		}
		applog.Error(c, "admin.product.update.fail", err, map[string]any{"product": id})
		return serverError(c)
	}

	applog.Audit(c, "admin.product.update", map[string]any{"product": id})
	return c.JSON(fiber.Map{"message": "Product updated successfully", "product": p})
}

// DELETE /admin/delete-product/:id
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return message(c, fiber.StatusNotFound, "Product not found")
	}

	if err := h.Catalog.Delete(id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return message(c, fiber.StatusNotFound, "Product not found")
		}
		applog.Error(c, "admin.product.delete.fail", err, map[string]any{"product": id})
		return serverError(c)
	}

	applog.Audit(c, "admin.product.delete", map[string]any{"product": id})
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
