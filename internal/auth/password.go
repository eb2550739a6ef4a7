package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/training-marketplace/internal/domain"
)

// PasswordMatcher compares a stored credential with a submitted password.
type PasswordMatcher interface {
	Match(stored, plain string) bool
}

// PlainMatcher compares credentials for exact equality.
type PlainMatcher struct{}

// Match implements PasswordMatcher.
func (PlainMatcher) Match(stored, plain string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) == 1
}

// BcryptMatcher treats stored credentials as bcrypt hashes.
type BcryptMatcher struct{}

// Match implements PasswordMatcher.
func (BcryptMatcher) Match(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// HashPassword hashes a plaintext password with configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// HashUsers returns copies of users whose passwords are bcrypt hashes.
func HashUsers(users []domain.User, cost int) ([]domain.User, error) {
	out := make([]domain.User, len(users))
	for i, u := range users {
		hashed, err := HashPassword(u.Password, cost)
		if err != nil {
			return nil, err
		}
		u.Password = hashed
		out[i] = u
	}
	return out, nil
}
