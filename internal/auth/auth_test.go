package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	j := NewJWT("test-secret")

	token, err := j.Sign("2f3a9c1e-5f7d-4a38-9d16-8f2f6f0f1a2b")
	require.NoError(t, err)

	id, err := j.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "2f3a9c1e-5f7d-4a38-9d16-8f2f6f0f1a2b", id)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := NewJWT("secret-a").Sign("staff-1")
	require.NoError(t, err)

	_, err = NewJWT("secret-b").Verify(token)
	require.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	_, err := NewJWT("secret").Verify("not.a.token")
	require.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22hunter22", hash)

	require.True(t, ComparePassword(hash, "hunter22hunter22"))
	require.False(t, ComparePassword(hash, "wrong-password"))
}
