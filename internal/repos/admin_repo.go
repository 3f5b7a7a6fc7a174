package repos

import (
	"ajir/internal/domain"

	"github.com/jmoiron/sqlx"
)

type AdminRepo struct{ db *sqlx.DB }

func NewAdminRepo(db *sqlx.DB) *AdminRepo { return &AdminRepo{db: db} }

func (r *AdminRepo) ByUsername(username string) (*domain.Admin, error) {
	var a domain.Admin
	err := r.db.Get(&a, `
	  SELECT id, username, password_hash, created_at
	  FROM admins WHERE username=?
	`, username)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
