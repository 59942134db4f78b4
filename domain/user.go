package domain

import "time"

// UserRole determines access to the admin surface.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// User is an account record. The ID is issued by the external identity
// provider, not generated here.
type User struct {
	ID        string    `bson:"_id" json:"_id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Photo     string    `bson:"photo" json:"photo"`
	Gender    string    `bson:"gender" json:"gender"`
	Role      UserRole  `bson:"role" json:"role"`
	DOB       time.Time `bson:"dob" json:"dob"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsAdmin reports whether the user may access admin-only endpoints.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// AgeAt returns the user's age in whole years at the given time.
func AgeAt(dob, at time.Time) int {
	age := at.Year() - dob.Year()
	if at.YearDay() < dob.YearDay() {
		age--
	}
	return age
}
