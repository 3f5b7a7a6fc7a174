package services_test

import (
	"errors"
	"testing"

	"ajir/internal/domain"
	"ajir/internal/repos"
	"ajir/internal/services"
)

func placeOrder(t *testing.T, orders *services.OrderService, p domain.Product, qty int, total float64) string {
	t.Helper()
	id, _, _, err := orders.Place(domain.Order{
		UserID: "u1",
		Name:   "Tester",
		Email:  "t@example.com",
		Product: domain.ProductSnapshot{
			ID:    p.ID,
			Name:  p.Category,
			Price: p.Price,
			Image: p.Image,
		},
		Quantity: qty,
		Total:    total,
	})
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func TestPaymentCopiesOrderTotalAndDecrementsStock(t *testing.T) {
	db := memdb(t)
	catalog := services.NewCatalogService(repos.NewProductRepo(db))
	orders := services.NewOrderService(repos.NewOrderRepo(db))
	payments := services.NewPaymentService(repos.NewOrderRepo(db), repos.NewPaymentRepo(db))

	p := seedProduct(t, catalog, "projector") // quantity 5
	oid := placeOrder(t, orders, p, 2, 25.0)

	// Amount must come from the stored order, never the request.
	pay, err := payments.Complete(oid, services.CardDetails{NameOnCard: "Tester"})
	if err != nil {
		t.Fatal(err)
	}
	if pay.AmountPaid != 25.0 {
		t.Fatalf("want amountPaid=25, got %v", pay.AmountPaid)
	}
	if pay.Status != "SUCCESS" || pay.PaymentMethod != "CARD" {
		t.Fatalf("bad payment defaults: %+v", pay)
	}

	got, err := catalog.Get(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Quantity != 3 {
		t.Fatalf("want quantity=3 after payment, got %d", got.Quantity)
	}
}

func TestPaymentMissingOrderWritesNothing(t *testing.T) {
	db := memdb(t)
	payments := services.NewPaymentService(repos.NewOrderRepo(db), repos.NewPaymentRepo(db))

	_, err := payments.Complete("no-such-order", services.CardDetails{})
	if !errors.Is(err, services.ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound, got %v", err)
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM payments`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("payment row written for missing order: %d", n)
	}
}

func TestPaymentDecrementFloorsAtZero(t *testing.T) {
	db := memdb(t)
	catalog := services.NewCatalogService(repos.NewProductRepo(db))
	orders := services.NewOrderService(repos.NewOrderRepo(db))
	payments := services.NewPaymentService(repos.NewOrderRepo(db), repos.NewPaymentRepo(db))

	p := seedProduct(t, catalog, "tent") // quantity 5
	oid := placeOrder(t, orders, p, 10, 125.0)

	// Overselling is allowed; stock just bottoms out.
	if _, err := payments.Complete(oid, services.CardDetails{}); err != nil {
		t.Fatal(err)
	}
	got, err := catalog.Get(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Quantity != 0 {
		t.Fatalf("want quantity floored at 0, got %d", got.Quantity)
	}
}
