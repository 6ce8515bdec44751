package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptV1Hasher(t *testing.T) {
	hasher := &BcryptV1Hasher{}

	hash, err := hasher.Hash("secret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	match, err := hasher.Verify("secret-password", hash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = hasher.Verify("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestBcryptV1Hasher_EmptyInputs(t *testing.T) {
	hasher := &BcryptV1Hasher{}

	_, err := hasher.Hash("")
	assert.Error(t, err)

	_, err = hasher.Verify("", "some-hash")
	assert.Error(t, err)

	_, err = hasher.Verify("password", "")
	assert.Error(t, err)
}

func TestBcryptV2Hasher(t *testing.T) {
	hasher := &BcryptV2Hasher{}

	hash, err := hasher.Hash("secret-password")
	require.NoError(t, err)
	assert.True(t, strings.Contains(hash, ":"), "v2 hash must carry the salt prefix")

	match, err := hasher.Verify("secret-password", hash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = hasher.Verify("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestBcryptV2Hasher_InvalidFormat(t *testing.T) {
	hasher := &BcryptV2Hasher{}

	_, err := hasher.Verify("password", "not-a-v2-hash")
	assert.Error(t, err)
}

func TestDefaultHasherFactory(t *testing.T) {
	factory := NewDefaultHasherFactory()

	hasher, err := factory.GetHasher(PasswordV1)
	require.NoError(t, err)
	assert.IsType(t, &BcryptV1Hasher{}, hasher)

	hasher, err = factory.GetHasher(PasswordV2)
	require.NoError(t, err)
	assert.IsType(t, &BcryptV2Hasher{}, hasher)

	_, err = factory.GetHasher(PasswordVersion(42))
	assert.Error(t, err)
}
