package repos

import (
	"ajir/internal/domain"

	"github.com/jmoiron/sqlx"
)

type PaymentRepo struct{ db *sqlx.DB }

func NewPaymentRepo(db *sqlx.DB) *PaymentRepo { return &PaymentRepo{db: db} }

// Complete records the payment and takes the ordered quantity out of stock in
// one transaction, so a crash can't leave a paid order with stock intact.
// The decrement floors at zero; payment is never refused for lack of stock.
func (r *PaymentRepo) Complete(p *domain.Payment, productID string, qty int) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO payments(id, order_id, payment_method, name_on_card, card_number, expiry_date, status, amount_paid)
	  VALUES(?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.OrderID, p.PaymentMethod, p.NameOnCard, p.CardNumber, p.ExpiryDate, p.Status, p.AmountPaid); err != nil {
		return err
	}

	if _, err := tx.Exec(`
	  UPDATE products
	  SET quantity = MAX(quantity - ?, 0), updated_at = CURRENT_TIMESTAMP
	  WHERE id = ?
	`, qty, productID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PaymentRepo) ByOrder(orderID string) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.db.Select(&out, `
	  SELECT id, order_id, payment_method, name_on_card, card_number, expiry_date, status, amount_paid, created_at
	  FROM payments
	  WHERE order_id=?
	  ORDER BY datetime(created_at) DESC
	`, orderID)
	return out, err
}
