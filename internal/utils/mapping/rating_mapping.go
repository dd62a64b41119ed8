package mapping

import (
	"github.com/SscSPs/rating_registry/internal/core/domain"
	"github.com/SscSPs/rating_registry/internal/models"
	"github.com/samber/lo"
)

// ToModelRating converts a domain Rating to a model Rating.
// A domain rating without an order number maps to 0, which the
// table's CHECK constraint rejects.
func ToModelRating(d domain.Rating) models.Rating {
	return models.Rating{
		ID:           d.ID,
		MoodysRating: d.MoodysRating,
		SPRating:     d.SPRating,
		FitchRating:  d.FitchRating,
		OrderNumber:  lo.FromPtr(d.OrderNumber),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRating converts a model Rating to a domain Rating
func ToDomainRating(m models.Rating) domain.Rating {
	return domain.Rating{
		ID:           m.ID,
		MoodysRating: m.MoodysRating,
		SPRating:     m.SPRating,
		FitchRating:  m.FitchRating,
		OrderNumber:  lo.ToPtr(m.OrderNumber),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRatingSlice converts a slice of model Ratings to a slice of domain Ratings
func ToDomainRatingSlice(ms []models.Rating) []domain.Rating {
	return lo.Map(ms, func(m models.Rating, _ int) domain.Rating {
		return ToDomainRating(m)
	})
}
