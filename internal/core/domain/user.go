package domain

import "time"

// Role is the privilege level attached to a user account.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User models an account holder. Email is unique among non-deleted users and
// is stored lower-cased; comparisons are case-insensitive.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DateBirth    time.Time `json:"date_birth"`
	Role         Role      `json:"role"`
	Deleted      bool      `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser builds a user ready for persistence, stamping both timestamps.
// The password must already be hashed; plaintext never reaches the entity.
func NewUser(firstName, lastName, email, passwordHash string, dateBirth time.Time, role Role) *User {
	now := time.Now().UTC()
	return &User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
		DateBirth:    dateBirth,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
