package handlers

import (
	"ajir/internal/domain"
	applog "ajir/internal/log"
	"ajir/internal/metrics"
	"ajir/internal/services"
	"ajir/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type WishlistHandler struct {
	Wish    *services.WishlistService
	Metrics *metrics.AppMetrics
}

// GET /wishlist/:userId
func (h *WishlistHandler) List(c *fiber.Ctx) error {
	userID, _ := validate.ID(c.Params("userId"))
	items, err := h.Wish.List(userID)
	if err != nil {
		applog.Error(c, "wishlist.list.fail", err, map[string]any{"user_id": userID})
		return serverError(c)
	}
	if items == nil {
		items = []domain.Product{}
	}
	return c.JSON(items)
}

type toggleRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
}

// POST /wishlist/toggle
func (h *WishlistHandler) Toggle(c *fiber.Ctx) error {
	var req toggleRequest
	if err := c.BodyParser(&req); err != nil {
		return message(c, fiber.StatusBadRequest, "Missing fields")
	}
	userID, userOK := validate.ID(req.UserID)
	productID, prodOK := validate.ID(req.ProductID)
	if !userOK || !prodOK {
		applog.Security(c, "wishlist.toggle.fail", map[string]any{"reason": "missing_fields"})
		return message(c, fiber.StatusBadRequest, "Missing fields")
	}

	items, member, err := h.Wish.Toggle(userID, productID)
	if err != nil {
		applog.Error(c, "wishlist.toggle.fail", err, map[string]any{"user_id": userID, "product": productID})
		return serverError(c)
	}
	if items == nil {
		items = []domain.Product{}
	}

	applog.Audit(c, "wishlist.toggle", map[string]any{"user_id": userID, "product": productID, "member": member})
	h.Metrics.WishlistToggled(c.UserContext(), member)
	return c.JSON(items)
}

// DELETE /wishlist/:userId/:productId
func (h *WishlistHandler) Remove(c *fiber.Ctx) error {
	userID, _ := validate.ID(c.Params("userId"))
	productID, _ := validate.ID(c.Params("productId"))
	if err := h.Wish.Remove(userID, productID); err != nil {
		applog.Error(c, "wishlist.remove.fail", err, map[string]any{"user_id": userID, "product": productID})
		return serverError(c)
	}
	applog.Audit(c, "wishlist.remove", map[string]any{"user_id": userID, "product": productID})
	return c.JSON(fiber.Map{"message": "Removed from wishlist"})
}
