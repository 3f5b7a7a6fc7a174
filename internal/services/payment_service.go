package services

import (
	"database/sql"
	"errors"

	"ajir/internal/domain"
	"ajir/internal/repos"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

// CardDetails is what the payment form submits. CVV is checked out-of-band
// and never persisted.
type CardDetails struct {
	PaymentMethod string
	NameOnCard    string
	CardNumber    string
	ExpiryDate    string
}

type PaymentService struct {
	Orders   *repos.OrderRepo
	Payments *repos.PaymentRepo
}

func NewPaymentService(orders *repos.OrderRepo, payments *repos.PaymentRepo) *PaymentService {
	return &PaymentService{Orders: orders, Payments: payments}
}

// Complete records a successful payment for an existing order. The amount is
// always the order's stored total; nothing from the request decides it. The
// ordered quantity comes out of the product's stock in the same transaction.
func (s *PaymentService) Complete(orderID string, card CardDetails) (domain.Payment, error) {
	o, err := s.Orders.Get(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Payment{}, ErrOrderNotFound
		}
		return domain.Payment{}, err
	}

	method := card.PaymentMethod
	if method == "" {
		method = "CARD"
	}

	p := domain.Payment{
		ID:            uuid.NewString(),
		OrderID:       o.ID,
		PaymentMethod: method,
		NameOnCard:    card.NameOnCard,
		CardNumber:    card.CardNumber,
		ExpiryDate:    card.ExpiryDate,
		Status:        "SUCCESS",
		AmountPaid:    o.Total,
	}
	if err := s.Payments.Complete(&p, o.Product.ID, o.Quantity); err != nil {
		return domain.Payment{}, err
	}
	return p, nil
}
