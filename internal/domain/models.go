package domain

type Product struct {
	ID          string  `db:"id" json:"id"`
	Category    string  `db:"category" json:"category"`
	RentalPlace string  `db:"rental_place" json:"rentalPlace"`
	Description string  `db:"description" json:"description,omitempty"`
	Quantity    int     `db:"quantity" json:"quantity"`
	Price       float64 `db:"price" json:"price"`
	Image       string  `db:"image" json:"image,omitempty"`
	CreatedAt   string  `db:"created_at" json:"createdAt"`
	UpdatedAt   string  `db:"updated_at" json:"updatedAt,omitempty"`
}

// ProductSnapshot is the product data copied onto an order at placement
// time. Later catalog edits never change past orders.
type ProductSnapshot struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
}

type RentalPeriod struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Order struct {
	ID               string          `json:"id"`
	UserID           string          `json:"userId"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	CivilID          string          `json:"civilId,omitempty"`
	Product          ProductSnapshot `json:"product"`
	RentalPeriod     RentalPeriod    `json:"rentalPeriod"`
	DeliveryLocation string          `json:"deliveryLocation"`
	BuildingAddress  string          `json:"buildingAddress"`
	Note             string          `json:"note,omitempty"`
	Quantity         int             `json:"quantity"`
	Location         GeoPoint        `json:"location"`
	Total            float64         `json:"total"`
	CreatedAt        string          `json:"createdAt"`
}

type Payment struct {
	ID            string  `db:"id" json:"id"`
	OrderID       string  `db:"order_id" json:"orderId"`
	PaymentMethod string  `db:"payment_method" json:"paymentMethod"`
	NameOnCard    string  `db:"name_on_card" json:"nameOnCard,omitempty"`
	CardNumber    string  `db:"card_number" json:"cardNumber,omitempty"`
	ExpiryDate    string  `db:"expiry_date" json:"expiryDate,omitempty"`
	Status        string  `db:"status" json:"status"`
	AmountPaid    float64 `db:"amount_paid" json:"amountPaid"`
	CreatedAt     string  `db:"created_at" json:"createdAt"`
}
