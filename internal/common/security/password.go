package security

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt hash. A fresh salt is generated per
// call, so hashing the same password twice yields different strings that both
// verify.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether password matches the stored hash.
// bcrypt's comparison is constant-time; a malformed hash simply fails to
// match.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
