package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const Cost = bcrypt.DefaultCost

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrMalformedHash   = errors.New("malformed password hash")
)

// placeholder is compared against when there is no configured hash, so a login costs the
// same whether or not an admin exists.
var placeholder, _ = bcrypt.GenerateFromPassword([]byte("placeholder"), Cost)

// Hash returns the bcrypt hash stored in ADMIN_PASSWORD_HASH.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify reports ErrInvalidPassword for any mismatch, including an empty password or hash.
// A hash bcrypt cannot read is ErrMalformedHash, which points at configuration rather than
// the caller.
func Verify(plain, hash string) error {
	stored := []byte(hash)
	if hash == "" {
		stored = placeholder
	}

	err := bcrypt.CompareHashAndPassword(stored, []byte(plain))

	switch {
	case hash == "" || plain == "":
		return ErrInvalidPassword
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidPassword
	default:
		return fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}
