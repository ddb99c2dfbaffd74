package domain

import "time"

// Customer is a shopper account stored in the customers table.
type Customer struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
