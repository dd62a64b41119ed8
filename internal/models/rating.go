package models

// Rating is a row of the ratings table.
type Rating struct {
	ID           int64   `db:"id"`
	MoodysRating *string `db:"moodys_rating"` // NULL when the agency has no notation
	SPRating     *string `db:"sp_rating"`
	FitchRating  *string `db:"fitch_rating"`
	OrderNumber  int     `db:"order_number"` // UNIQUE, > 0
	AuditFields
}
