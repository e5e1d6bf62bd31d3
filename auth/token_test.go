package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	token, err := codec.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestVerifyForeignSecret(t *testing.T) {
	issuer := NewCodec("secret-a", time.Hour)
	verifier := NewCodec("secret-b", time.Hour)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyExpired(t *testing.T) {
	codec := NewCodec("test-secret", -time.Minute)

	token, err := codec.Issue("user-123")
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyMalformed(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	for _, input := range []string{"", "garbage", "a.b.c"} {
		_, err := codec.Verify(input)
		assert.ErrorIs(t, err, ErrMalformed, "input %q", input)
	}
}
