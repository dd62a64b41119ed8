package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/SscSPs/rating_registry/internal/apperrors"
	"github.com/SscSPs/rating_registry/internal/core/domain"
	portsrepo "github.com/SscSPs/rating_registry/internal/core/ports/repositories"
)

// OrderAllocator resolves the order number a rating is saved under.
//
// The lookup and the later write are separate statements, so two concurrent
// saves can both pass Allocate. The unique constraint on order_number in
// storage is what finally rejects the loser.
type OrderAllocator struct {
	ratingRepo portsrepo.RatingReader
}

// NewOrderAllocator creates an OrderAllocator reading from repo.
func NewOrderAllocator(repo portsrepo.RatingReader) *OrderAllocator {
	return &OrderAllocator{ratingRepo: repo}
}

// Allocate returns the order number for r. Without an explicit rank the next
// free rank after the current maximum is used; an explicit rank is accepted
// only when no other rating holds it.
func (a *OrderAllocator) Allocate(ctx context.Context, r *domain.Rating) (int, error) {
	if r.OrderNumber == nil {
		return a.nextRank(ctx)
	}

	rank := *r.OrderNumber
	holder, err := a.ratingRepo.FindByRank(ctx, rank)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return rank, nil
		}
		return 0, fmt.Errorf("failed to look up order number %d: %w", rank, err)
	}
	if holder != nil && holder.ID != r.ID {
		return 0, apperrors.NewOrderError(apperrors.ReasonDuplicateOrder, rank)
	}
	return rank, nil
}

func (a *OrderAllocator) nextRank(ctx context.Context) (int, error) {
	maxRank, err := a.ratingRepo.FindMaxRank(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to find current maximum order number: %w", err)
	}
	if maxRank == nil {
		return domain.FirstRank, nil
	}
	if *maxRank == math.MaxInt {
		return 0, apperrors.NewRatingError(apperrors.ReasonOrderSpaceExhausted)
	}
	return *maxRank + 1, nil
}
