package handlers

import (
	"ajir/internal/domain"
	applog "ajir/internal/log"
	"ajir/internal/metrics"
	"ajir/internal/services"
	"ajir/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Order   *services.OrderService
	Metrics *metrics.AppMetrics
}

type orderProductRef struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
}

type placeOrderRequest struct {
	UserID           string          `json:"userId"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	CivilID          string          `json:"civilId"`
	Product          orderProductRef `json:"product"`
	From             string          `json:"from"`
	To               string          `json:"to"`
	DeliveryLocation string          `json:"deliveryLocation"`
	BuildingAddress  string          `json:"buildingAddress"`
	Note             string          `json:"note"`
	Quantity         int             `json:"quantity"`
	Latitude         float64         `json:"latitude"`
	Longitude        float64         `json:"longitude"`
	Total            float64         `json:"total"`
}

// POST /order
//
// The submission is denormalized: the product display fields are copied into
// the order as a snapshot, not re-fetched from the catalog. Optional fields
// default to empty/zero instead of failing.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var req placeOrderRequest
	if err := c.BodyParser(&req); err != nil {
		applog.Security(c, "order.place.fail", map[string]any{"reason": "bad_body"})
		return message(c, fiber.StatusBadRequest, "Invalid order")
	}
	if _, ok := validate.ID(req.Product.ID); !ok {
		applog.Security(c, "order.place.fail", map[string]any{"reason": "missing_product"})
		return message(c, fiber.StatusBadRequest, "Invalid order")
	}

	// The original frontend sends the product's category as its display name.
	snapshotName := req.Product.Category
	if snapshotName == "" {
		snapshotName = req.Product.Name
	}

	orderID, serverTotal, clientTotal, err := h.Order.Place(domain.Order{
		UserID:  req.UserID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		CivilID: req.CivilID,
		Product: domain.ProductSnapshot{
			ID:    req.Product.ID,
			Name:  snapshotName,
			Price: req.Product.Price,
			Image: req.Product.Image,
		},
		RentalPeriod:     domain.RentalPeriod{From: req.From, To: req.To},
		DeliveryLocation: req.DeliveryLocation,
		BuildingAddress:  req.BuildingAddress,
		Note:             req.Note,
		Quantity:         req.Quantity,
		Location:         domain.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude},
		Total:            req.Total,
	})
	if err != nil {
		applog.Error(c, "order.place.fail", err, nil)
		return serverError(c)
	}

	applog.Audit(c, "order.place", map[string]any{
		"order_id":     orderID,
		"server_total": serverTotal,
		"client_total": clientTotal,
		"mismatch":     serverTotal != clientTotal,
	})
	h.Metrics.OrderPlaced(c.UserContext())
	return c.JSON(fiber.Map{"orderId": orderID})
}

// GET /orders/:userId
func (h *OrderHandler) History(c *fiber.Ctx) error {
	userID, _ := validate.ID(c.Params("userId"))
	orders, err := h.Order.ListByUser(userID)
	if err != nil {
		applog.Error(c, "orders.history.fail", err, map[string]any{"user_id": userID})
		return serverError(c)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(orders)
}
