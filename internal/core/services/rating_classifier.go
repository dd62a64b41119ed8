package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/rating_registry/internal/core/domain"
	portsrepo "github.com/SscSPs/rating_registry/internal/core/ports/repositories"
)

// GradeClassifier answers rank-window queries. Bad input (unknown agency,
// missing or inverted bounds) yields an empty result rather than an error.
type GradeClassifier struct {
	ratingRepo portsrepo.RatingReader
}

// NewGradeClassifier creates a GradeClassifier reading from repo.
func NewGradeClassifier(repo portsrepo.RatingReader) *GradeClassifier {
	return &GradeClassifier{ratingRepo: repo}
}

func (c *GradeClassifier) FindAll(ctx context.Context) ([]domain.Rating, error) {
	ratings, err := c.ratingRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return nonNil(ratings), nil
}

func (c *GradeClassifier) FindByAgency(ctx context.Context, name string) ([]domain.Rating, error) {
	agency, ok := domain.ParseAgency(name)
	if !ok {
		return []domain.Rating{}, nil
	}
	ratings, err := c.ratingRepo.FindByAgencyNotNull(ctx, agency)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings for agency %s: %w", agency, err)
	}
	return nonNil(ratings), nil
}

func (c *GradeClassifier) FindInvestmentGrade(ctx context.Context) ([]domain.Rating, error) {
	ratings, err := c.ratingRepo.FindByRankRange(ctx, domain.FirstRank, domain.LowestInvestmentGradeRank)
	if err != nil {
		return nil, fmt.Errorf("failed to list investment grade ratings: %w", err)
	}
	return nonNil(ratings), nil
}

func (c *GradeClassifier) FindSpeculativeGrade(ctx context.Context) ([]domain.Rating, error) {
	ratings, err := c.ratingRepo.FindByRankGreaterOrEqual(ctx, domain.FirstSpeculativeGradeRank)
	if err != nil {
		return nil, fmt.Errorf("failed to list speculative grade ratings: %w", err)
	}
	return nonNil(ratings), nil
}

func (c *GradeClassifier) FindByOrderRange(ctx context.Context, minRank, maxRank *int) ([]domain.Rating, error) {
	if minRank == nil || maxRank == nil || *minRank > *maxRank {
		return []domain.Rating{}, nil
	}
	ratings, err := c.ratingRepo.FindByRankRange(ctx, *minRank, *maxRank)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings in order range [%d, %d]: %w", *minRank, *maxRank, err)
	}
	return nonNil(ratings), nil
}

func nonNil(ratings []domain.Rating) []domain.Rating {
	if ratings == nil {
		return []domain.Rating{}
	}
	return ratings
}
