package domain

type User struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Hash      string `db:"password_hash" json:"-"`
	CreatedAt string `db:"created_at" json:"-"`
}

type Admin struct {
	ID        string `db:"id" json:"id"`
	Username  string `db:"username" json:"username"`
	Hash      string `db:"password_hash" json:"-"`
	CreatedAt string `db:"created_at" json:"-"`
}
