package models

import "time"

// User mirrors the users table.
type User struct {
	UserID         string    `db:"user_id"`
	Email          string    `db:"email"`
	PasswordHash   string    `db:"password_hash"`
	StoreName      string    `db:"store_name"`
	CurrencySymbol string    `db:"currency_symbol"`
	CreatedAt      time.Time `db:"created_at"`
}
