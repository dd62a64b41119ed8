package dto

import (
	"time"

	"github.com/SscSPs/rating_registry/internal/core/domain"
	"github.com/samber/lo"
)

// SaveRatingRequest defines the data needed to create or update a rating.
// Pointers distinguish an omitted notation or rank from a zero value.
type SaveRatingRequest struct {
	ID           int64   `json:"id,omitempty" validate:"gte=0"` // 0 creates a new rating
	MoodysRating *string `json:"moodysRating" validate:"omitempty,moodys"`
	SPRating     *string `json:"spRating" validate:"omitempty,sp_fitch"`
	FitchRating  *string `json:"fitchRating" validate:"omitempty,sp_fitch"`
	OrderNumber  *int    `json:"orderNumber" validate:"omitempty,gt=0"` // nil auto-assigns
}

// ToDomain converts the request to a domain Rating.
func (r SaveRatingRequest) ToDomain() *domain.Rating {
	return &domain.Rating{
		ID:           r.ID,
		MoodysRating: r.MoodysRating,
		SPRating:     r.SPRating,
		FitchRating:  r.FitchRating,
		OrderNumber:  r.OrderNumber,
	}
}

// ApplyTo overlays the fields set in the request onto a stored rating.
// Nil fields keep the stored value.
func (r SaveRatingRequest) ApplyTo(stored domain.Rating) *domain.Rating {
	if r.MoodysRating != nil {
		stored.MoodysRating = r.MoodysRating
	}
	if r.SPRating != nil {
		stored.SPRating = r.SPRating
	}
	if r.FitchRating != nil {
		stored.FitchRating = r.FitchRating
	}
	if r.OrderNumber != nil {
		stored.OrderNumber = r.OrderNumber
	}
	return &stored
}

// RatingResponse defines the data returned for a rating.
type RatingResponse struct {
	ID               int64     `json:"id"`
	MoodysRating     *string   `json:"moodysRating"`
	SPRating         *string   `json:"spRating"`
	FitchRating      *string   `json:"fitchRating"`
	OrderNumber      *int      `json:"orderNumber"`
	InvestmentGrade  bool      `json:"investmentGrade"`
	SpeculativeGrade bool      `json:"speculativeGrade"`
	CreatedAt        time.Time `json:"createdAt"`
	CreatedBy        string    `json:"createdBy"`
	LastUpdatedAt    time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy    string    `json:"lastUpdatedBy"`
}

// ToRatingResponse converts a domain.Rating to RatingResponse DTO
func ToRatingResponse(r *domain.Rating) RatingResponse {
	return RatingResponse{
		ID:               r.ID,
		MoodysRating:     r.MoodysRating,
		SPRating:         r.SPRating,
		FitchRating:      r.FitchRating,
		OrderNumber:      r.OrderNumber,
		InvestmentGrade:  r.IsInvestmentGrade(),
		SpeculativeGrade: r.IsSpeculativeGrade(),
		CreatedAt:        r.CreatedAt,
		CreatedBy:        r.CreatedBy,
		LastUpdatedAt:    r.LastUpdatedAt,
		LastUpdatedBy:    r.LastUpdatedBy,
	}
}

// ToDomain converts the response back to a domain Rating.
// The grade flags are derived from OrderNumber and are not carried over.
func (r RatingResponse) ToDomain() domain.Rating {
	return domain.Rating{
		ID:           r.ID,
		MoodysRating: r.MoodysRating,
		SPRating:     r.SPRating,
		FitchRating:  r.FitchRating,
		OrderNumber:  r.OrderNumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     r.CreatedAt,
			CreatedBy:     r.CreatedBy,
			LastUpdatedAt: r.LastUpdatedAt,
			LastUpdatedBy: r.LastUpdatedBy,
		},
	}
}

// ToListRatingResponse converts a slice of domain.Rating to RatingResponse DTOs
func ToListRatingResponse(ratings []domain.Rating) []RatingResponse {
	return lo.Map(ratings, func(r domain.Rating, _ int) RatingResponse {
		return ToRatingResponse(&r)
	})
}
