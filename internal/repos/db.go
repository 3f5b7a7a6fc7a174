package repos

import (
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

// DefaultAdminUsername is the single seeded admin account.
const DefaultAdminUsername = "admin"

const defaultAdminPassword = "1234"

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Ensure the admin account exists (idempotent; safe to run every start)
	if err := SeedDefaultAdmin(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Users
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

-- Admins
CREATE TABLE IF NOT EXISTS admins(
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Rental products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  category TEXT NOT NULL,
  rental_place TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
  price NUMERIC NOT NULL CHECK (price >= 0),
  image TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);

-- Orders. Product columns are a snapshot copied at placement time,
-- deliberately not a foreign key into products.
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  name TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL DEFAULT '',
  civil_id TEXT NOT NULL DEFAULT '',
  product_id TEXT NOT NULL,
  product_name TEXT NOT NULL DEFAULT '',
  product_price NUMERIC NOT NULL DEFAULT 0,
  product_image TEXT NOT NULL DEFAULT '',
  rental_from TEXT NOT NULL DEFAULT '',
  rental_to TEXT NOT NULL DEFAULT '',
  delivery_location TEXT NOT NULL DEFAULT '',
  building_address TEXT NOT NULL DEFAULT '',
  note TEXT NOT NULL DEFAULT '',
  quantity INTEGER NOT NULL DEFAULT 0,
  latitude NUMERIC NOT NULL DEFAULT 0,
  longitude NUMERIC NOT NULL DEFAULT 0,
  total NUMERIC NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

-- Payments
CREATE TABLE IF NOT EXISTS payments(
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL REFERENCES orders(id),
  payment_method TEXT NOT NULL DEFAULT 'CARD',
  name_on_card TEXT NOT NULL DEFAULT '',
  card_number TEXT NOT NULL DEFAULT '',
  expiry_date TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'SUCCESS',
  amount_paid NUMERIC NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_payments_order ON payments(order_id);

-- Wishlist membership; the unique pair is the backstop for toggle races.
CREATE TABLE IF NOT EXISTS wishlist(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  product_id TEXT NOT NULL REFERENCES products(id),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  UNIQUE(user_id, product_id)
);
CREATE INDEX IF NOT EXISTS idx_wishlist_user ON wishlist(user_id);
`
	_, err := db.Exec(schema)
	return err
}

// SeedDefaultAdmin runs before the listener starts. It inserts the default
// admin if absent, and upgrades a legacy plaintext password to a bcrypt hash
// if one is found. Idempotent under re-execution.
func SeedDefaultAdmin(db *sqlx.DB) error {
	var existing struct {
		ID   string `db:"id"`
		Hash string `db:"password_hash"`
	}
	err := db.Get(&existing, `SELECT id, password_hash FROM admins WHERE username=?`, DefaultAdminUsername)
	if err == nil {
		if strings.HasPrefix(existing.Hash, "$2") {
			return nil
		}
		// Legacy row stored the password in the clear; re-hash in place.
		h, herr := bcrypt.GenerateFromPassword([]byte(existing.Hash), bcrypt.DefaultCost)
		if herr != nil {
			return herr
		}
		log.Println("[seed] upgrading legacy admin password to bcrypt")
		_, err = db.Exec(`UPDATE admins SET password_hash=? WHERE id=?`, string(h), existing.ID)
		return err
	}

	h, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	log.Println("[seed] creating default admin")
	_, err = db.Exec(`
		INSERT INTO admins(id, username, password_hash) VALUES(?, ?, ?)
		ON CONFLICT(username) DO NOTHING
	`, uuid.NewString(), DefaultAdminUsername, string(h))
	return err
}
