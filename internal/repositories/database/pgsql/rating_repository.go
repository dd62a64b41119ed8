package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/rating_registry/internal/apperrors"
	"github.com/SscSPs/rating_registry/internal/core/domain"
	portsrepo "github.com/SscSPs/rating_registry/internal/core/ports/repositories"
	"github.com/SscSPs/rating_registry/internal/models"
	"github.com/SscSPs/rating_registry/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	ratingColumns = `id, moodys_rating, sp_rating, fitch_rating, order_number,
		created_at, created_by, last_updated_at, last_updated_by`

	// Names fixed by migrations/000001_create_ratings.up.sql.
	orderNumberUniqueConstraint   = "ratings_order_number_key"
	orderNumberPositiveConstraint = "ratings_order_number_check"
)

// PgxRatingRepository implements portsrepo.RatingRepositoryFacade using pgxpool.
type PgxRatingRepository struct {
	BaseRepository
}

// newPgxRatingRepository creates a new repository for rating data.
func newPgxRatingRepository(pool *pgxpool.Pool) portsrepo.RatingRepositoryFacade {
	return &PgxRatingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RatingRepositoryFacade = (*PgxRatingRepository)(nil)

func scanRating(row pgx.Row) (models.Rating, error) {
	var m models.Rating
	err := row.Scan(
		&m.ID,
		&m.MoodysRating,
		&m.SPRating,
		&m.FitchRating,
		&m.OrderNumber,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// queryRatings runs a list query and maps the rows to domain ratings.
func (r *PgxRatingRepository) queryRatings(ctx context.Context, query string, args ...any) ([]domain.Rating, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	modelRatings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Rating, error) {
		return scanRating(row)
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainRatingSlice(modelRatings), nil
}

// queryRating runs a single-row query; no row maps to apperrors.ErrNotFound.
func (r *PgxRatingRepository) queryRating(ctx context.Context, query string, args ...any) (*domain.Rating, error) {
	m, err := scanRating(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	d := mapping.ToDomainRating(m)
	return &d, nil
}

// FindAll retrieves every rating, best rank first.
func (r *PgxRatingRepository) FindAll(ctx context.Context) ([]domain.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings ORDER BY order_number ASC;`
	ratings, err := r.queryRatings(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	return ratings, nil
}

// FindByID retrieves a rating by its ID.
func (r *PgxRatingRepository) FindByID(ctx context.Context, id int64) (*domain.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE id = $1;`
	rating, err := r.queryRating(ctx, query, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find rating by id %d: %w", id, err)
	}
	return rating, nil
}

// ExistsByID reports whether a rating with the given ID exists.
func (r *PgxRatingRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM ratings WHERE id = $1);`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check rating %d: %w", id, err)
	}
	return exists, nil
}

// FindByRank retrieves the rating holding an order number.
func (r *PgxRatingRepository) FindByRank(ctx context.Context, rank int) (*domain.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE order_number = $1;`
	rating, err := r.queryRating(ctx, query, rank)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find rating by order number %d: %w", rank, err)
	}
	return rating, nil
}

// FindMaxRank returns the highest order number in use, or nil for an empty table.
func (r *PgxRatingRepository) FindMaxRank(ctx context.Context) (*int, error) {
	var maxRank *int
	if err := r.Pool.QueryRow(ctx, `SELECT MAX(order_number) FROM ratings;`).Scan(&maxRank); err != nil {
		return nil, fmt.Errorf("failed to find max order number: %w", err)
	}
	return maxRank, nil
}

// FindByAgencyNotNull retrieves ratings with a non-empty notation for the agency.
func (r *PgxRatingRepository) FindByAgencyNotNull(ctx context.Context, agency domain.Agency) ([]domain.Rating, error) {
	column, err := agencyColumn(agency)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + ratingColumns + ` FROM ratings
		WHERE ` + column + ` IS NOT NULL AND btrim(` + column + `) <> ''
		ORDER BY order_number ASC;`
	ratings, err := r.queryRatings(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings for agency %s: %w", agency, err)
	}
	return ratings, nil
}

// FindByRankRange retrieves ratings with minRank <= order_number <= maxRank.
func (r *PgxRatingRepository) FindByRankRange(ctx context.Context, minRank, maxRank int) ([]domain.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings
		WHERE order_number BETWEEN $1 AND $2
		ORDER BY order_number ASC;`
	ratings, err := r.queryRatings(ctx, query, minRank, maxRank)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings in order range [%d, %d]: %w", minRank, maxRank, err)
	}
	return ratings, nil
}

// FindByRankGreaterOrEqual retrieves ratings with order_number >= minRank.
func (r *PgxRatingRepository) FindByRankGreaterOrEqual(ctx context.Context, minRank int) ([]domain.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings
		WHERE order_number >= $1
		ORDER BY order_number ASC;`
	ratings, err := r.queryRatings(ctx, query, minRank)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings from order number %d: %w", minRank, err)
	}
	return ratings, nil
}

// Save inserts a new rating or updates an existing one and returns the stored row.
func (r *PgxRatingRepository) Save(ctx context.Context, rating domain.Rating) (*domain.Rating, error) {
	m := mapping.ToModelRating(rating)

	var saved *domain.Rating
	var err error
	if rating.IsNew() {
		query := `
			INSERT INTO ratings (moodys_rating, sp_rating, fitch_rating, order_number,
				created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING ` + ratingColumns + `;`
		saved, err = r.queryRating(ctx, query,
			m.MoodysRating, m.SPRating, m.FitchRating, m.OrderNumber,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	} else {
		query := `
			UPDATE ratings
			SET moodys_rating = $2, sp_rating = $3, fitch_rating = $4, order_number = $5,
				last_updated_at = $6, last_updated_by = $7
			WHERE id = $1
			RETURNING ` + ratingColumns + `;`
		saved, err = r.queryRating(ctx, query,
			m.ID, m.MoodysRating, m.SPRating, m.FitchRating, m.OrderNumber,
			m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}

	if err != nil {
		return nil, translateSaveError(err, m)
	}
	return saved, nil
}

// DeleteByID removes a rating.
func (r *PgxRatingRepository) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM ratings WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete rating %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func translateSaveError(err error, m models.Rating) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	if pgErr, ok := pgErrorFor(err, pgUniqueViolation); ok && pgErr.ConstraintName == orderNumberUniqueConstraint {
		return apperrors.NewOrderError(apperrors.ReasonDuplicateOrder, m.OrderNumber)
	}
	if pgErr, ok := pgErrorFor(err, pgCheckViolation); ok && pgErr.ConstraintName == orderNumberPositiveConstraint {
		return apperrors.NewOrderError(apperrors.ReasonNonPositiveOrder, m.OrderNumber)
	}
	return fmt.Errorf("failed to save rating with order number %d: %w", m.OrderNumber, err)
}

func agencyColumn(agency domain.Agency) (string, error) {
	switch agency {
	case domain.AgencyMoodys:
		return "moodys_rating", nil
	case domain.AgencySP:
		return "sp_rating", nil
	case domain.AgencyFitch:
		return "fitch_rating", nil
	}
	return "", fmt.Errorf("unknown agency %q: %w", agency, apperrors.ErrValidation)
}
