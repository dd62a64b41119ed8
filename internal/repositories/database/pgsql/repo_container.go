package pgsql

import (
	portsrepo "github.com/SscSPs/rating_registry/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RatingRepo: newPgxRatingRepository(dbPool),
	}
}
