package pgsql

import (
	portsrepo "github.com/dejmenek/pms-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo: newPgxProductRepository(dbPool),
		UserRepo:    newPgxUserRepository(dbPool),
	}
}
