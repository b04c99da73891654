package password

import "golang.org/x/crypto/bcrypt"

// cost mirrors the bcrypt work factor the user records were written with.
const cost = 10

// Hash returns a salted bcrypt hash of the plaintext password.
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext matches the stored hash. Comparison is
// delegated to bcrypt, which is safe against timing inspection of the hash.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
