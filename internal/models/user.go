package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	UserTypeCustomer = "customer"
	UserTypeTrainer  = "trainer"
)

type User struct {
	ID                string    `json:"id"`
	Name              *string   `json:"name"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	Role              string    `json:"role"`
	UserType          string    `json:"user_type"`
	IsApprovedTrainer bool      `json:"is_approved_trainer"`
	CreatedAt         time.Time `json:"created_at"`
	LastSignedIn      time.Time `json:"last_signed_in"`
}

// ApprovedTrainer reports whether the user may submit proposals.
func (u *User) ApprovedTrainer() bool {
	return u.UserType == UserTypeTrainer && u.IsApprovedTrainer
}
