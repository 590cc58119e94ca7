// Package password isolates credential storage and comparison behind one
// narrow interface so the scheme can be swapped without touching the
// auth flow.
package password

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Scheme hashes new credentials and compares stored ones.
type Scheme interface {
	Hash(plain string) (string, error)
	Compare(stored, plain string) bool
}

// Plain stores credentials as-is. It matches the legacy data this tool
// inherits; prefer Bcrypt for new installations.
type Plain struct{}

func (Plain) Hash(plain string) (string, error) { return plain, nil }

func (Plain) Compare(stored, plain string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) == 1
}

// Bcrypt stores bcrypt hashes at the default cost.
type Bcrypt struct{}

func (Bcrypt) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (Bcrypt) Compare(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// FromName maps a configuration value to a scheme, defaulting to Plain.
func FromName(name string) Scheme {
	if strings.EqualFold(name, "bcrypt") {
		return Bcrypt{}
	}
	return Plain{}
}
