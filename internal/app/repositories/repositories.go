package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository behind one constructor so the
// bootstrap wiring stays flat.
type Repositories struct {
	AlunoRepository *AlunoRepository
	UserRepository  *UserRepository
}

// NewRepositories creates all repositories sharing the given pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AlunoRepository: NewAlunoRepository(db),
		UserRepository:  NewUserRepository(db),
	}
}
