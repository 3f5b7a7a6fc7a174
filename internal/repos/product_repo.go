package repos

import (
	"ajir/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, category, rental_place, description, quantity, price, image,
  created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  ORDER BY datetime(created_at) DESC
	`)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

func (r *ProductRepo) ListByCategory(category string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE category = ?
	  ORDER BY datetime(created_at) DESC
	`, category)
	return out, err
}

func (r *ProductRepo) Create(p *domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id, category, rental_place, description, quantity, price, image)
	  VALUES(?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Category, p.RentalPlace, p.Description, p.Quantity, p.Price, p.Image)
	return err
}

// Update writes the full merged row; the service owns the partial merge.
func (r *ProductRepo) Update(p *domain.Product) (bool, error) {
	res, err := r.db.Exec(`
	  UPDATE products
	  SET category=?, rental_place=?, description=?, quantity=?, price=?, image=?,
	      updated_at=CURRENT_TIMESTAMP
	  WHERE id=?
	`, p.Category, p.RentalPlace, p.Description, p.Quantity, p.Price, p.Image, p.ID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *ProductRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
