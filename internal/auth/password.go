// Package auth hashes passwords and issues signed session tokens.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest password bcrypt accepts, in bytes.
const MaxPasswordBytes = 72

var (
	// ErrMismatch is returned by CheckPassword when the password is wrong.
	ErrMismatch = errors.New("auth: password mismatch")
	// ErrPasswordTooLong is returned by HashPassword for passwords longer
	// than MaxPasswordBytes.
	ErrPasswordTooLong = errors.New("auth: password longer than 72 bytes")
)

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword compares password with hash.
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
