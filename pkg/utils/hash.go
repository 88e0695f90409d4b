package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	HashSchemeSHA256 = "sha256"
	HashSchemeBcrypt = "bcrypt"
)

// PasswordHasher produces the stored password digest.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// NewPasswordHasher returns the hasher for the configured scheme.
//
// The sha256 scheme is a single unsalted round rendered as lowercase
// hex. That is deliberately weak but matches every digest the desktop
// client has already stored; switching an existing database to bcrypt
// would lock all travelers out. New deployments should set
// HASH_SCHEME=bcrypt.
func NewPasswordHasher(scheme string) (PasswordHasher, error) {
	switch scheme {
	case "", HashSchemeSHA256:
		return sha256Hasher{}, nil
	case HashSchemeBcrypt:
		return bcryptHasher{cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown hash scheme %q", scheme)
	}
}

type sha256Hasher struct{}

func (sha256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

type bcryptHasher struct {
	cost int
}

func (h bcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(digest), nil
}
