package security

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifiesOriginal(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw1")
	require.NoError(t, err)
	require.NotEqual(t, "pw1", hash)

	require.True(t, CheckPasswordHash("pw1", hash))
	require.False(t, CheckPasswordHash("pw2", hash))
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, CheckPasswordHash("same-password", first))
	require.True(t, CheckPasswordHash("same-password", second))
}

func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	t.Parallel()

	require.False(t, CheckPasswordHash("pw1", ""))
	require.False(t, CheckPasswordHash("pw1", "not-a-bcrypt-hash"))
}
