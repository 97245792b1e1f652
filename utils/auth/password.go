package auth

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordMismatch = errors.New("password does not match")
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12
	// MinPasswordLength is the minimum password length
	MinPasswordLength = 8
	// MaxPasswordBytes is bcrypt's hard input limit
	MaxPasswordBytes = 72
)

// TruncatePassword caps a password at bcrypt's 72-byte limit. It drops
// trailing runes one at a time, re-measuring the UTF-8 length after each, so
// a multi-byte rune is never split. Hash and verify apply the identical
// truncation, so over-length passwords stay symmetric.
func TruncatePassword(password string) string {
	for len(password) > MaxPasswordBytes {
		runes := []rune(password)
		password = string(runes[:len(runes)-1])
	}
	return password
}

// HashPassword generates a bcrypt hash of the password
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(TruncatePassword(password)), DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// GenerateTempPassword produces a random temporary credential for freshly
// created accounts and forgot-password resets.
func GenerateTempPassword() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}

// VerifyPassword checks if the provided password matches the hash
func VerifyPassword(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(TruncatePassword(password)))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return err
	}
	return nil
}
