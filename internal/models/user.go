package models

import "time"

// User is the database row for the users table.
type User struct {
	ID             string    `db:"id"`
	Username       string    `db:"username"`
	Email          string    `db:"email"`
	PasswordHash   string    `db:"password_hash"`
	PhoneNumber    *string   `db:"phone_number"`
	EmailConfirmed bool      `db:"email_confirmed"`
	CreatedAt      time.Time `db:"created_at"`
}

// Role is the database row for the roles table.
type Role struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}
