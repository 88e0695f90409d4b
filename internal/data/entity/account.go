package entity

type UserRole string

const (
	RoleTraveler UserRole = "Traveler"
)

// Account is the role-tagged credential record. The identity is assigned
// by the database on insert.
type Account struct {
	ID            int64    `db:"user_id"`
	Username      string   `db:"username"`
	PasswordHash  string   `db:"user_password"`
	ContactNumber string   `db:"contact_number"`
	Email         string   `db:"email"`
	Role          UserRole `db:"user_role"`
}
