package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2PINHasher_HashAndVerify(t *testing.T) {
	hasher := NewArgon2PINHasher()

	pin := "482913"
	hash, err := hasher.Hash(pin)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Format check
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v="), "hash should start with $argon2id$v=")
	assert.NotContains(t, hash, pin, "PIN must not appear in the stored hash")

	match, err := hasher.Verify(pin, hash)
	require.NoError(t, err)
	assert.True(t, match, "correct PIN should verify")
}

func TestArgon2PINHasher_VerifyWrongPIN(t *testing.T) {
	hasher := NewArgon2PINHasher()

	hash, err := hasher.Hash("1234")
	require.NoError(t, err)

	match, err := hasher.Verify("4321", hash)
	require.NoError(t, err)
	assert.False(t, match, "wrong PIN should not verify")
}

func TestArgon2PINHasher_UniqueSalts(t *testing.T) {
	hasher := NewArgon2PINHasher()

	hash1, err := hasher.Hash("1234")
	require.NoError(t, err)

	hash2, err := hasher.Hash("1234")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "same PIN should produce different hashes (different salts)")
}

func TestArgon2PINHasher_MalformedHash(t *testing.T) {
	hasher := NewArgon2PINHasher()

	_, err := hasher.Verify("1234", "not-a-hash")
	assert.Error(t, err)

	_, err = hasher.Verify("1234", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA")
	assert.Error(t, err)
}
