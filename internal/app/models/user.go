package models

import "time"

// User is the dashboard login account. Only the data shape is owned here;
// session handling lives with the external auth collaborator. Passwords are
// always stored as bcrypt hashes.
type User struct {
	ID           int64      `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	Password     string     `db:"password" json:"-"`
	Email        string     `db:"email" json:"email"`
	NomeCompleto string     `db:"nome_completo" json:"nome_completo"`
	Role         string     `db:"role" json:"role"`
	Ativo        bool       `db:"ativo" json:"ativo"`
	UltimoLogin  *time.Time `db:"ultimo_login" json:"ultimo_login,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
