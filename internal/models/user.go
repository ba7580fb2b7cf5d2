package models

import (
	"time"
)

// Role is the access level of a user account.
type Role string

// Supported roles
const (
	RoleAthlete Role = "athlete"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAthlete || r == RoleAdmin
}

// User represents a user account
type User struct {
	ID             string    `json:"id" db:"id"`                          // Primary key
	Username       string    `json:"username" db:"username"`              // Unique username
	Email          string    `json:"email" db:"email"`                    // Unique email
	Password       string    `json:"-" db:"password"`                     // Hashed password
	Role           Role      `json:"role" db:"role"`                      // athlete or admin
	FullName       string    `json:"fullName" db:"full_name"`             // Display name
	ProfilePicture *string   `json:"profilePicture" db:"profile_picture"` // Picture URL
	Position       *string   `json:"position" db:"position"`              // Court position tag
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`           // Creation timestamp
}

// NewUser holds the fields needed to create a user.
type NewUser struct {
	Username       string  `json:"username" validate:"required,min=3,max=50"`
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,min=6"`
	Role           Role    `json:"role" validate:"required,oneof=athlete admin"`
	FullName       string  `json:"fullName" validate:"required"`
	ProfilePicture *string `json:"profilePicture"`
	Position       *string `json:"position"`
}

// UserPatch is a partial user update. Absent fields are left untouched.
type UserPatch struct {
	Username       *string          `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email          *string          `json:"email,omitempty" validate:"omitempty,email"`
	Password       *string          `json:"password,omitempty" validate:"omitempty,min=6"`
	Role           *Role            `json:"role,omitempty" validate:"omitempty,oneof=athlete admin"`
	FullName       *string          `json:"fullName,omitempty" validate:"omitempty,min=1"`
	ProfilePicture Nullable[string] `json:"profilePicture,omitzero"`
	Position       Nullable[string] `json:"position,omitzero"`
}

// Apply merges the supplied patch fields onto u.
func (u *User) Apply(p UserPatch) {
	assign(&u.Username, p.Username)
	assign(&u.Email, p.Email)
	assign(&u.Password, p.Password)
	assign(&u.Role, p.Role)
	assign(&u.FullName, p.FullName)
	p.ProfilePicture.applyTo(&u.ProfilePicture)
	p.Position.applyTo(&u.Position)
}
