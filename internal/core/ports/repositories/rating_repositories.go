package repositories

import (
	"context"

	"github.com/SscSPs/rating_registry/internal/core/domain"
)

// RatingReader defines read operations for rating data.
// Every list operation returns ratings ordered by ascending order number.
type RatingReader interface {
	// FindAll retrieves every rating.
	FindAll(ctx context.Context) ([]domain.Rating, error)

	// FindByID retrieves a rating by its ID. Returns apperrors.ErrNotFound when absent.
	FindByID(ctx context.Context, id int64) (*domain.Rating, error)

	// ExistsByID reports whether a rating with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// FindByRank retrieves the rating holding an order number. Returns apperrors.ErrNotFound when absent.
	FindByRank(ctx context.Context, rank int) (*domain.Rating, error)

	// FindMaxRank returns the highest order number in use, or nil when there are no ratings.
	FindMaxRank(ctx context.Context) (*int, error)

	// FindByAgencyNotNull retrieves ratings with a non-empty notation for the agency.
	FindByAgencyNotNull(ctx context.Context, agency domain.Agency) ([]domain.Rating, error)

	// FindByRankRange retrieves ratings with minRank <= order number <= maxRank.
	FindByRankRange(ctx context.Context, minRank, maxRank int) ([]domain.Rating, error)

	// FindByRankGreaterOrEqual retrieves ratings with order number >= minRank.
	FindByRankGreaterOrEqual(ctx context.Context, minRank int) ([]domain.Rating, error)
}

// RatingWriter defines write operations for rating data
type RatingWriter interface {
	// Save inserts a new rating (ID == 0) or updates an existing one and returns the stored row.
	// A rank already held by another rating fails with a DUPLICATE_ORDER_NUMBER apperrors.RatingError.
	Save(ctx context.Context, rating domain.Rating) (*domain.Rating, error)

	// DeleteByID removes a rating. Returns apperrors.ErrNotFound when nothing was deleted.
	DeleteByID(ctx context.Context, id int64) error
}

// RatingRepositoryFacade combines all rating-related repository interfaces
type RatingRepositoryFacade interface {
	RatingReader
	RatingWriter
}
