package handlers

import (
	"errors"

	applog "ajir/internal/log"
	"ajir/internal/metrics"
	"ajir/internal/services"
	"ajir/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	Payments *services.PaymentService
	Metrics  *metrics.AppMetrics
}

type completePaymentRequest struct {
	OrderID       string `json:"orderId"`
	PaymentMethod string `json:"paymentMethod"`
	NameOnCard    string `json:"nameOnCard"`
	CardNumber    string `json:"cardNumber"`
	ExpiryDate    string `json:"expiryDate"`
	CVV           string `json:"cvv"` // accepted, never stored
}

// POST /payment/complete
func (h *PaymentHandler) Complete(c *fiber.Ctx) error {
	var req completePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return message(c, fiber.StatusBadRequest, "Invalid payment")
	}
	orderID, ok := validate.ID(req.OrderID)
	if !ok {
		applog.Security(c, "payment.complete.fail", map[string]any{"reason": "missing_order_id"})
		return message(c, fiber.StatusBadRequest, "Invalid payment")
	}

	p, err := h.Payments.Complete(orderID, services.CardDetails{
		PaymentMethod: req.PaymentMethod,
		NameOnCard:    req.NameOnCard,
		CardNumber:    req.CardNumber,
		ExpiryDate:    req.ExpiryDate,
	})
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			applog.Security(c, "payment.complete.fail", map[string]any{"order_id": orderID, "reason": "unknown_order"})
			return message(c, fiber.StatusNotFound, "Order not found")
		}
		applog.Error(c, "payment.complete.fail", err, map[string]any{"order_id": orderID})
		return serverError(c)
	}

	applog.Audit(c, "payment.complete", map[string]any{"order_id": orderID, "payment_id": p.ID, "amount": p.AmountPaid})
	h.Metrics.PaymentCompleted(c.UserContext(), p.AmountPaid)
	return c.JSON(fiber.Map{"message": "Payment successful", "paymentId": p.ID})
}
