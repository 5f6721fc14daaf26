package entity

import (
	"time"
)

// User is the aggregate root for the credential store.
// Passwords are stored as bcrypt hashes in PasswordHash; the plaintext and
// the hash are never serialized to clients.
type User struct {
	ID           string
	Email        string // case-insensitive identity key, stored lowercased
	PasswordHash string
	Name         string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the redacted view of a User returned to clients.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role.String()}
}
