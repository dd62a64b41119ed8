package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// Reason is the machine-readable code carried by a RatingError.
type Reason string

const (
	ReasonNullRating          Reason = "NULL_RATING"
	ReasonNoNotationProvided  Reason = "NO_NOTATION_PROVIDED"
	ReasonInvalidMoodysFormat Reason = "INVALID_MOODYS_FORMAT"
	ReasonInvalidSPFormat     Reason = "INVALID_SP_FORMAT"
	ReasonInvalidFitchFormat  Reason = "INVALID_FITCH_FORMAT"
	ReasonNonPositiveOrder    Reason = "NON_POSITIVE_ORDER"
	ReasonDuplicateOrder      Reason = "DUPLICATE_ORDER_NUMBER"
	ReasonNotFound            Reason = "NOT_FOUND"
	ReasonInvalidID           Reason = "INVALID_ID"
	ReasonOrderSpaceExhausted Reason = "ORDER_SPACE_EXHAUSTED"
)

// RatingError is returned for every rejected rating operation.
// All reasons are validation failures; NOT_FOUND and DUPLICATE_ORDER_NUMBER
// additionally match ErrNotFound and ErrDuplicate.
type RatingError struct {
	Reason      Reason
	Value       string // offending notation, if any
	OrderNumber int    // offending order number, if any
	ID          int64  // offending id, if any
}

func (e *RatingError) Error() string {
	switch e.Reason {
	case ReasonNullRating:
		return "rating must not be null"
	case ReasonNoNotationProvided:
		return "at least one of the Moody's, S&P or Fitch ratings must be provided"
	case ReasonInvalidMoodysFormat:
		return fmt.Sprintf("invalid Moody's rating format: %q", e.Value)
	case ReasonInvalidSPFormat:
		return fmt.Sprintf("invalid S&P rating format: %q", e.Value)
	case ReasonInvalidFitchFormat:
		return fmt.Sprintf("invalid Fitch rating format: %q", e.Value)
	case ReasonNonPositiveOrder:
		return fmt.Sprintf("order number must be positive, got %d", e.OrderNumber)
	case ReasonDuplicateOrder:
		return fmt.Sprintf("order number %d is already used by another rating", e.OrderNumber)
	case ReasonNotFound:
		return fmt.Sprintf("rating %d not found", e.ID)
	case ReasonInvalidID:
		return fmt.Sprintf("invalid rating id %d", e.ID)
	case ReasonOrderSpaceExhausted:
		return "no order number left to assign"
	default:
		return fmt.Sprintf("invalid rating: %s", e.Reason)
	}
}

// Is lets callers match a RatingError against the package sentinels.
func (e *RatingError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return true
	case ErrNotFound:
		return e.Reason == ReasonNotFound
	case ErrDuplicate:
		return e.Reason == ReasonDuplicateOrder
	}
	return false
}

// NewRatingError creates a RatingError with only the reason set.
func NewRatingError(reason Reason) *RatingError {
	return &RatingError{Reason: reason}
}

// NewNotationError reports a notation that does not match its agency's grammar.
func NewNotationError(reason Reason, value string) *RatingError {
	return &RatingError{Reason: reason, Value: value}
}

// NewOrderError reports a rejected order number.
func NewOrderError(reason Reason, orderNumber int) *RatingError {
	return &RatingError{Reason: reason, OrderNumber: orderNumber}
}

// NewIDError reports a rejected or unknown rating id.
func NewIDError(reason Reason, id int64) *RatingError {
	return &RatingError{Reason: reason, ID: id}
}

// ReasonOf extracts the reason code from err, looking through wrapped errors.
func ReasonOf(err error) (Reason, bool) {
	var ratingErr *RatingError
	if errors.As(err, &ratingErr) {
		return ratingErr.Reason, true
	}
	return "", false
}
