package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSHA256HasherDeterministic(t *testing.T) {
	hasher, err := NewPasswordHasher(HashSchemeSHA256)
	require.NoError(t, err)

	first, err := hasher.Hash("Password123")
	require.NoError(t, err)
	second, err := hasher.Hash("Password123")
	require.NoError(t, err)

	// No salt: same input, same stored digest.
	assert.Equal(t, first, second)

	sum := sha256.Sum256([]byte("Password123"))
	assert.Equal(t, hex.EncodeToString(sum[:]), first)
	assert.Len(t, first, 64)
	assert.Equal(t, strings.ToLower(first), first, "digest is lowercase hex")
}

func TestSHA256IsDefaultScheme(t *testing.T) {
	hasher, err := NewPasswordHasher("")
	require.NoError(t, err)

	digest, err := hasher.Hash("Password123")
	require.NoError(t, err)

	sum := sha256.Sum256([]byte("Password123"))
	assert.Equal(t, hex.EncodeToString(sum[:]), digest)
}

func TestBcryptHasher(t *testing.T) {
	hasher, err := NewPasswordHasher(HashSchemeBcrypt)
	require.NoError(t, err)

	first, err := hasher.Hash("Password123")
	require.NoError(t, err)
	second, err := hasher.Hash("Password123")
	require.NoError(t, err)

	// Salted: two digests of the same password differ, but both verify.
	assert.NotEqual(t, first, second)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(first), []byte("Password123")))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(second), []byte("Password123")))
}

func TestUnknownSchemeRejected(t *testing.T) {
	_, err := NewPasswordHasher("md5")
	assert.Error(t, err)
}
