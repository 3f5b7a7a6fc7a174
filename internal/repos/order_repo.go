package repos

import (
	"ajir/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// orderRow is the flat persisted form; the snapshot and nested value types
// live in dedicated columns.
type orderRow struct {
	ID               string  `db:"id"`
	UserID           string  `db:"user_id"`
	Name             string  `db:"name"`
	Email            string  `db:"email"`
	Phone            string  `db:"phone"`
	CivilID          string  `db:"civil_id"`
	ProductID        string  `db:"product_id"`
	ProductName      string  `db:"product_name"`
	ProductPrice     float64 `db:"product_price"`
	ProductImage     string  `db:"product_image"`
	RentalFrom       string  `db:"rental_from"`
	RentalTo         string  `db:"rental_to"`
	DeliveryLocation string  `db:"delivery_location"`
	BuildingAddress  string  `db:"building_address"`
	Note             string  `db:"note"`
	Quantity         int     `db:"quantity"`
	Latitude         float64 `db:"latitude"`
	Longitude        float64 `db:"longitude"`
	Total            float64 `db:"total"`
	CreatedAt        string  `db:"created_at"`
}

func (row orderRow) toDomain() domain.Order {
	return domain.Order{
		ID:      row.ID,
		UserID:  row.UserID,
		Name:    row.Name,
		Email:   row.Email,
		Phone:   row.Phone,
		CivilID: row.CivilID,
		Product: domain.ProductSnapshot{
			ID:    row.ProductID,
			Name:  row.ProductName,
			Price: row.ProductPrice,
			Image: row.ProductImage,
		},
		RentalPeriod:     domain.RentalPeriod{From: row.RentalFrom, To: row.RentalTo},
		DeliveryLocation: row.DeliveryLocation,
		BuildingAddress:  row.BuildingAddress,
		Note:             row.Note,
		Quantity:         row.Quantity,
		Location:         domain.GeoPoint{Latitude: row.Latitude, Longitude: row.Longitude},
		Total:            row.Total,
		CreatedAt:        row.CreatedAt,
	}
}

func (r *OrderRepo) Create(o *domain.Order) error {
	_, err := r.db.Exec(`
	  INSERT INTO orders
	    (id, user_id, name, email, phone, civil_id,
	     product_id, product_name, product_price, product_image,
	     rental_from, rental_to, delivery_location, building_address, note,
	     quantity, latitude, longitude, total)
	  VALUES (?,?,?,?,?,?, ?,?,?,?, ?,?,?,?,?, ?,?,?,?)
	`, o.ID, o.UserID, o.Name, o.Email, o.Phone, o.CivilID,
		o.Product.ID, o.Product.Name, o.Product.Price, o.Product.Image,
		o.RentalPeriod.From, o.RentalPeriod.To, o.DeliveryLocation, o.BuildingAddress, o.Note,
		o.Quantity, o.Location.Latitude, o.Location.Longitude, o.Total)
	return err
}

func (r *OrderRepo) Get(id string) (domain.Order, error) {
	var row orderRow
	if err := r.db.Get(&row, `SELECT * FROM orders WHERE id=?`, id); err != nil {
		return domain.Order{}, err
	}
	return row.toDomain(), nil
}

// ListByUser returns a user's orders newest first.
func (r *OrderRepo) ListByUser(userID string) ([]domain.Order, error) {
	var rows []orderRow
	err := r.db.Select(&rows, `
	  SELECT * FROM orders
	  WHERE user_id=?
	  ORDER BY datetime(created_at) DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
