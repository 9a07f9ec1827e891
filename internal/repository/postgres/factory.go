package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/baharkarakas/mindbank/internal/repository"
)

type Repositories struct {
	Records repo.Records
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Records: &recordsRepo{pool: pool},
	}
}
