package domain

import "strings"

// Agency identifies a credit rating agency.
type Agency string

const (
	AgencyMoodys Agency = "MOODYS"
	AgencySP     Agency = "SP"
	AgencyFitch  Agency = "FITCH"
)

// Rank bands. Rank 1 is the best credit quality.
const (
	FirstRank                 = 1
	LowestInvestmentGradeRank = 12 // Baa3 / BBB-
	FirstSpeculativeGradeRank = LowestInvestmentGradeRank + 1
)

// ParseAgency resolves an agency name case-insensitively.
// Unknown or blank names report false.
func ParseAgency(name string) (Agency, bool) {
	switch Agency(strings.ToUpper(strings.TrimSpace(name))) {
	case AgencyMoodys:
		return AgencyMoodys, true
	case AgencySP:
		return AgencySP, true
	case AgencyFitch:
		return AgencyFitch, true
	}
	return "", false
}

// Rating is one row of the rating scale: up to three agency notations
// sharing a single rank (order number).
type Rating struct {
	ID           int64   `json:"id"`           // Primary Key, 0 until persisted
	MoodysRating *string `json:"moodysRating"` // Nullable, e.g. "Baa3"
	SPRating     *string `json:"spRating"`     // Nullable, e.g. "BBB-"
	FitchRating  *string `json:"fitchRating"`  // Nullable, e.g. "BBB-"
	OrderNumber  *int    `json:"orderNumber"`  // Unique rank; nil on a save request means auto-assign
	AuditFields
}

// IsNew reports whether the rating has not been persisted yet.
func (r Rating) IsNew() bool {
	return r.ID == 0
}

// Notation returns the rating's notation for the given agency.
func (r Rating) Notation(agency Agency) *string {
	switch agency {
	case AgencyMoodys:
		return r.MoodysRating
	case AgencySP:
		return r.SPRating
	case AgencyFitch:
		return r.FitchRating
	}
	return nil
}

// HasNotation reports whether a non-blank notation is present for the agency.
func (r Rating) HasNotation(agency Agency) bool {
	return !IsBlank(r.Notation(agency))
}

// IsInvestmentGrade reports whether the rank falls in [1, 12].
func (r Rating) IsInvestmentGrade() bool {
	return r.OrderNumber != nil &&
		*r.OrderNumber >= FirstRank &&
		*r.OrderNumber <= LowestInvestmentGradeRank
}

// IsSpeculativeGrade reports whether the rank is 13 or worse.
func (r Rating) IsSpeculativeGrade() bool {
	return r.OrderNumber != nil && *r.OrderNumber >= FirstSpeculativeGradeRank
}

// IsBlank reports whether s is nil or contains only whitespace.
func IsBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
