package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/rating_registry/internal/apperrors"
	"github.com/SscSPs/rating_registry/internal/core/domain"
	portsrepo "github.com/SscSPs/rating_registry/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rating_registry/internal/core/ports/services"
	"github.com/SscSPs/rating_registry/internal/platform/contextx"
	"github.com/google/uuid"
)

// ratingService implements the RatingSvcFacade interface.
// Saves run validate -> allocate rank -> persist; queries go to the classifier.
type ratingService struct {
	BaseService
	ratingRepo portsrepo.RatingRepositoryFacade
	validator  *RatingValidator
	allocator  *OrderAllocator
	classifier *GradeClassifier
	now        func() time.Time
}

// RatingServiceOption is a functional option for configuring the rating service
type RatingServiceOption func(*ratingService)

// WithClock overrides the time source used for audit fields.
func WithClock(now func() time.Time) RatingServiceOption {
	return func(s *ratingService) {
		s.now = now
	}
}

// NewRatingService creates a new rating service with the provided options
func NewRatingService(repo portsrepo.RatingRepositoryFacade, options ...RatingServiceOption) portssvc.RatingSvcFacade {
	svc := &ratingService{
		ratingRepo: repo,
		validator:  NewRatingValidator(),
		allocator:  NewOrderAllocator(repo),
		classifier: NewGradeClassifier(repo),
		now:        time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure ratingService implements the RatingSvcFacade interface
var _ portssvc.RatingSvcFacade = (*ratingService)(nil)

func (s *ratingService) SaveRating(ctx context.Context, rating *domain.Rating) (*domain.Rating, error) {
	ctx = contextx.WithLogger(ctx, s.GetLogger(ctx).With(slog.String("operation_id", uuid.NewString())))

	if err := s.validator.Validate(rating); err != nil {
		s.LogWarn(ctx, err, "Rejected invalid rating")
		return nil, err
	}
	if rating.ID < 0 {
		err := apperrors.NewIDError(apperrors.ReasonInvalidID, rating.ID)
		s.LogWarn(ctx, err, "Rejected rating with invalid id")
		return nil, err
	}

	candidate := normalizeNotations(*rating)

	var existing *domain.Rating
	if !candidate.IsNew() {
		found, err := s.ratingRepo.FindByID(ctx, candidate.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				notFound := apperrors.NewIDError(apperrors.ReasonNotFound, candidate.ID)
				s.LogWarn(ctx, notFound, "Cannot update unknown rating", slog.Int64("rating_id", candidate.ID))
				return nil, notFound
			}
			s.LogError(ctx, err, "Failed to load rating for update", slog.Int64("rating_id", candidate.ID))
			return nil, fmt.Errorf("failed to load rating %d: %w", candidate.ID, err)
		}
		existing = found
		// An update without a rank keeps the one it already has.
		if candidate.OrderNumber == nil {
			candidate.OrderNumber = existing.OrderNumber
		}
	}

	rank, err := s.allocator.Allocate(ctx, &candidate)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			s.LogWarn(ctx, err, "Rejected rating order number")
			return nil, err
		}
		s.LogError(ctx, err, "Failed to allocate order number")
		return nil, err
	}
	candidate.OrderNumber = &rank
	s.LogDebug(ctx, "Allocated order number", slog.Int("order_number", rank), slog.Int64("rating_id", candidate.ID))

	now := s.now()
	actorID := contextx.ActorIDFromContext(ctx)
	if existing != nil {
		candidate.CreatedAt = existing.CreatedAt
		candidate.CreatedBy = existing.CreatedBy
	} else {
		candidate.CreatedAt = now
		candidate.CreatedBy = actorID
	}
	candidate.LastUpdatedAt = now
	candidate.LastUpdatedBy = actorID

	saved, err := s.ratingRepo.Save(ctx, candidate)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			// Lost a race for the same rank; storage rejected it.
			s.LogWarn(ctx, err, "Storage rejected rating", slog.Int("order_number", rank))
			return nil, err
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			// Deleted after it was loaded for this update.
			notFound := apperrors.NewIDError(apperrors.ReasonNotFound, candidate.ID)
			s.LogWarn(ctx, notFound, "Rating disappeared before update", slog.Int64("rating_id", candidate.ID))
			return nil, notFound
		}
		s.LogError(ctx, err, "Failed to save rating", slog.Int("order_number", rank))
		return nil, fmt.Errorf("failed to save rating: %w", err)
	}

	s.LogInfo(ctx, "Rating saved successfully",
		slog.Int64("rating_id", saved.ID),
		slog.Int("order_number", rank),
		slog.Bool("created", existing == nil))
	return saved, nil
}

func (s *ratingService) FindAll(ctx context.Context) ([]domain.Rating, error) {
	ratings, err := s.classifier.FindAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ratings")
		return nil, err
	}
	return ratings, nil
}

func (s *ratingService) FindRatingByID(ctx context.Context, id int64) (*domain.Rating, error) {
	if id <= 0 {
		return nil, apperrors.NewIDError(apperrors.ReasonInvalidID, id)
	}
	rating, err := s.ratingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewIDError(apperrors.ReasonNotFound, id)
		}
		s.LogError(ctx, err, "Failed to find rating by ID", slog.Int64("rating_id", id))
		return nil, fmt.Errorf("failed to find rating %d: %w", id, err)
	}
	return rating, nil
}

func (s *ratingService) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}
	exists, err := s.ratingRepo.ExistsByID(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to check rating existence", slog.Int64("rating_id", id))
		return false, fmt.Errorf("failed to check rating %d: %w", id, err)
	}
	return exists, nil
}

func (s *ratingService) DeleteRating(ctx context.Context, id int64) error {
	if id <= 0 {
		err := apperrors.NewIDError(apperrors.ReasonInvalidID, id)
		s.LogWarn(ctx, err, "Rejected delete with invalid id")
		return err
	}

	exists, err := s.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		err := apperrors.NewIDError(apperrors.ReasonNotFound, id)
		s.LogWarn(ctx, err, "Cannot delete unknown rating", slog.Int64("rating_id", id))
		return err
	}

	if err := s.ratingRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewIDError(apperrors.ReasonNotFound, id)
		}
		s.LogError(ctx, err, "Failed to delete rating", slog.Int64("rating_id", id))
		return fmt.Errorf("failed to delete rating %d: %w", id, err)
	}

	s.LogInfo(ctx, "Rating deleted successfully", slog.Int64("rating_id", id))
	return nil
}

func (s *ratingService) FindByAgency(ctx context.Context, agency string) ([]domain.Rating, error) {
	return s.classifier.FindByAgency(ctx, agency)
}

func (s *ratingService) FindInvestmentGrade(ctx context.Context) ([]domain.Rating, error) {
	return s.classifier.FindInvestmentGrade(ctx)
}

func (s *ratingService) FindSpeculativeGrade(ctx context.Context) ([]domain.Rating, error) {
	return s.classifier.FindSpeculativeGrade(ctx)
}

func (s *ratingService) FindByOrderRange(ctx context.Context, minRank, maxRank *int) ([]domain.Rating, error) {
	return s.classifier.FindByOrderRange(ctx, minRank, maxRank)
}

// normalizeNotations trims notations and drops blank ones.
func normalizeNotations(r domain.Rating) domain.Rating {
	r.MoodysRating = trimmedOrNil(r.MoodysRating)
	r.SPRating = trimmedOrNil(r.SPRating)
	r.FitchRating = trimmedOrNil(r.FitchRating)
	return r
}

func trimmedOrNil(s *string) *string {
	if domain.IsBlank(s) {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
