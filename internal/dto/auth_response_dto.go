package dto

// LoginResponse carries the signed JWT and the authenticated store account.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
