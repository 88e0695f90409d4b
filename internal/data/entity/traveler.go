package entity

// TravelerProfile is the role-specific profile row owned by exactly one
// Account. It is only ever created together with its account.
type TravelerProfile struct {
	UserID       int64  `db:"user_id"`
	CNIC         string `db:"cnic"`
	TravelerName string `db:"traveler_name"`
	Preference   string `db:"preference"`
}
