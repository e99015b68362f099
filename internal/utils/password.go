package utils

import "golang.org/x/crypto/bcrypt"

// passwordCost is the bcrypt work factor applied to newly stored credentials.
const passwordCost = bcrypt.DefaultCost

// HashPassword derives the bcrypt hash stored for a store account's password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches the stored bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
