package services

import (
	"context"

	"github.com/SscSPs/rating_registry/internal/core/domain"
)

// RatingReaderSvc defines lookups of single ratings.
type RatingReaderSvc interface {
	// FindAll retrieves all ratings, best rank first.
	FindAll(ctx context.Context) ([]domain.Rating, error)

	// FindRatingByID retrieves a rating by its ID.
	FindRatingByID(ctx context.Context, id int64) (*domain.Rating, error)

	// ExistsByID reports whether a rating exists. Non-positive IDs never exist.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// RatingWriterSvc defines write operations for ratings.
type RatingWriterSvc interface {
	// SaveRating validates, ranks and persists a new or existing rating.
	SaveRating(ctx context.Context, rating *domain.Rating) (*domain.Rating, error)

	// DeleteRating removes an existing rating.
	DeleteRating(ctx context.Context, id int64) error
}

// RatingClassifierSvc defines range queries over the rank order.
// None of them fail on bad input; they return an empty slice instead.
type RatingClassifierSvc interface {
	FindByAgency(ctx context.Context, agency string) ([]domain.Rating, error)
	FindInvestmentGrade(ctx context.Context) ([]domain.Rating, error)
	FindSpeculativeGrade(ctx context.Context) ([]domain.Rating, error)
	FindByOrderRange(ctx context.Context, minRank, maxRank *int) ([]domain.Rating, error)
}

// RatingSvcFacade combines all rating-related service interfaces
type RatingSvcFacade interface {
	RatingReaderSvc
	RatingWriterSvc
	RatingClassifierSvc
}
