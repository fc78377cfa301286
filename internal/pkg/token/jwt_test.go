package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matcare/pregnancy-backend/internal/config"
	"github.com/matcare/pregnancy-backend/internal/entity"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager(config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour})

	signed, err := m.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	userID, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewManager(config.AuthConfig{JWTSecret: "secret-a", TokenTTL: time.Hour})
	verifier := NewManager(config.AuthConfig{JWTSecret: "secret-b", TokenTTL: time.Hour})

	signed, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, entity.ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	m := NewManager(config.AuthConfig{JWTSecret: "test-secret", TokenTTL: -time.Minute})

	signed, err := m.Issue("user-123")
	require.NoError(t, err)

	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, entity.ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	m := NewManager(config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour})

	_, err := m.Verify("not.a.token")
	assert.ErrorIs(t, err, entity.ErrInvalidToken)
}
