package services

import (
	"ajir/internal/domain"
	"ajir/internal/repos"

	"github.com/google/uuid"
)

type OrderService struct {
	Orders *repos.OrderRepo
}

func NewOrderService(orders *repos.OrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

// Place persists a denormalized order submission. The product fields arrive
// as a snapshot copied from the caller and are stored as-is, not re-fetched
// from the catalog. Missing optional fields stay zero-valued. The client
// total is stored; the snapshot-derived total is returned alongside so the
// caller can audit a mismatch.
func (s *OrderService) Place(o domain.Order) (string, float64, float64, error) {
	o.ID = uuid.NewString()
	if o.UserID == "" {
		o.UserID = "guest"
	}

	serverTotal := o.Product.Price * float64(o.Quantity)
	if err := s.Orders.Create(&o); err != nil {
		return "", 0, 0, err
	}
	return o.ID, serverTotal, o.Total, nil
}

func (s *OrderService) ListByUser(userID string) ([]domain.Order, error) {
	return s.Orders.ListByUser(userID)
}
