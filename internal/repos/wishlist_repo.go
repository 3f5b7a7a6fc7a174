package repos

import (
	"database/sql"
	"errors"

	"ajir/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type WishlistRepo struct{ db *sqlx.DB }

func NewWishlistRepo(db *sqlx.DB) *WishlistRepo { return &WishlistRepo{db: db} }

// Toggle inserts the pair if absent and deletes it if present, inside one
// transaction. The UNIQUE(user_id, product_id) index is the backstop if two
// toggles for the same pair race. Returns true when the pair is a member
// after the call.
func (r *WishlistRepo) Toggle(userID, productID string) (bool, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	var id string
	err = tx.Get(&id, `SELECT id FROM wishlist WHERE user_id=? AND product_id=?`, userID, productID)
	switch {
	case err == nil:
		if _, err := tx.Exec(`DELETE FROM wishlist WHERE id=?`, id); err != nil {
			return false, err
		}
		return false, tx.Commit()
	case errors.Is(err, sql.ErrNoRows):
		if _, err := tx.Exec(`
		  INSERT INTO wishlist(id, user_id, product_id) VALUES(?, ?, ?)
		`, uuid.NewString(), userID, productID); err != nil {
			return false, err
		}
		return true, tx.Commit()
	default:
		return false, err
	}
}

func (r *WishlistRepo) Remove(userID, productID string) error {
	_, err := r.db.Exec(`DELETE FROM wishlist WHERE user_id=? AND product_id=?`, userID, productID)
	return err
}

// ListProducts resolves a user's wishlist entries to full product records.
func (r *WishlistRepo) ListProducts(userID string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT p.id, p.category, p.rental_place, p.description, p.quantity, p.price, p.image,
	         p.created_at, COALESCE(p.updated_at,'') AS updated_at
	  FROM wishlist w
	  JOIN products p ON p.id = w.product_id
	  WHERE w.user_id = ?
	  ORDER BY datetime(w.created_at) DESC
	`, userID)
	return out, err
}
