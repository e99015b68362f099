package domain

import "time"

// User is a store account. The user's ID doubles as the OwnerID that scopes
// every product, sale and cash session belonging to the store.
type User struct {
	UserID         string    `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	StoreName      string    `json:"store_name"`
	CurrencySymbol string    `json:"currency_symbol"`
	CreatedAt      time.Time `json:"created_at"`
}

// Owner returns the tenant identity this user's data lives under.
func (u *User) Owner() OwnerID {
	return OwnerID(u.UserID)
}
