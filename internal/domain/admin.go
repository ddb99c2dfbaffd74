package domain

import "time"

// Admin is a catalog administrator stored in the admins table.
type Admin struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
