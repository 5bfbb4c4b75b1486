package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPasswordHashing(t *testing.T) {
	h1, err := HashPassword("longenough")
	require.NoError(t, err)
	h2, err := HashPassword("longenough")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "each hash carries its own salt")
	assert.NoError(t, CheckPassword("longenough", h1))
	assert.Error(t, CheckPassword("wrong-password", h1))
}

func TestValidatePassword(t *testing.T) {
	assert.ErrorIs(t, ValidatePassword("short"), ErrPasswordTooShort)
	assert.NoError(t, ValidatePassword("12345678"))
}

func TestToken_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	id := primitive.NewObjectID()

	token, exp, err := m.Issue(id)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 2*time.Second)

	got, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestToken_ExpiryBoundary(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	now := issued
	m := NewTokenManager("secret", time.Hour).WithClock(func() time.Time { return now })

	token, exp, err := m.Issue(primitive.NewObjectID())
	require.NoError(t, err)

	now = exp.Add(-time.Second)
	_, err = m.Parse(token)
	assert.NoError(t, err, "accepted before expiry")

	now = exp
	_, err = m.Parse(token)
	assert.NoError(t, err, "accepted at exactly exp")

	now = exp.Add(999 * time.Millisecond)
	_, err = m.Parse(token)
	assert.NoError(t, err, "accepted within the exp second")

	now = exp.Add(time.Second)
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken, "rejected after expiry")
}

func TestToken_Rejections(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	token, _, err := other.Issue(primitive.NewObjectID())
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken, "signature mismatch")

	_, err = m.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// no exp claim
	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: primitive.NewObjectID().Hex()})
	signed, err := noExp.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = m.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// subject that is not an ObjectID
	badSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err = badSub.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = m.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// alg none
	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   primitive.NewObjectID().Hex(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err = none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
