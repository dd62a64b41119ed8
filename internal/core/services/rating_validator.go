package services

import (
	"github.com/SscSPs/rating_registry/internal/apperrors"
	"github.com/SscSPs/rating_registry/internal/core/domain"
)

// RatingValidator checks a candidate rating's notations and order number.
// Agencies disagreeing on investment vs speculative grade is accepted.
type RatingValidator struct{}

// NewRatingValidator creates a RatingValidator.
func NewRatingValidator() *RatingValidator {
	return &RatingValidator{}
}

type notationRule struct {
	agency domain.Agency
	valid  func(string) bool
	reason apperrors.Reason
}

var notationRules = []notationRule{
	{domain.AgencyMoodys, domain.ValidMoodysNotation, apperrors.ReasonInvalidMoodysFormat},
	{domain.AgencySP, domain.ValidSPNotation, apperrors.ReasonInvalidSPFormat},
	{domain.AgencyFitch, domain.ValidFitchNotation, apperrors.ReasonInvalidFitchFormat},
}

// Validate returns nil for a valid rating or a *apperrors.RatingError
// describing the first rule it breaks. It never modifies r.
func (v *RatingValidator) Validate(r *domain.Rating) error {
	if r == nil {
		return apperrors.NewRatingError(apperrors.ReasonNullRating)
	}

	if domain.IsBlank(r.MoodysRating) && domain.IsBlank(r.SPRating) && domain.IsBlank(r.FitchRating) {
		return apperrors.NewRatingError(apperrors.ReasonNoNotationProvided)
	}

	for _, rule := range notationRules {
		notation := r.Notation(rule.agency)
		if domain.IsBlank(notation) {
			continue
		}
		if !rule.valid(*notation) {
			return apperrors.NewNotationError(rule.reason, *notation)
		}
	}

	if r.OrderNumber != nil && *r.OrderNumber <= 0 {
		return apperrors.NewOrderError(apperrors.ReasonNonPositiveOrder, *r.OrderNumber)
	}

	return nil
}
