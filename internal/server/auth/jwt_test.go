package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
	"github.com/dmitrijs2005/accountkeeper/internal/timex"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func payload(typ models.TokenType, ttl time.Duration) TokenPayload {
	return TokenPayload{UserID: 42, Code: "AbCdEfGhIjKlMnOpQrSt", Type: typ, ExpiresAt: epoch.Add(ttl)}
}

func TestSignAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("super-secret"), timex.NewManualClock(epoch))

	for _, typ := range []models.TokenType{models.TokenTypeAccess, models.TokenTypeRefresh} {
		tok, err := codec.Sign(payload(typ, time.Hour))
		require.NoError(t, err)

		got, err := codec.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, int64(42), got.UserID)
		assert.Equal(t, "AbCdEfGhIjKlMnOpQrSt", got.Code)
		assert.Equal(t, typ, got.Type)
		assert.True(t, got.ExpiresAt.Equal(epoch.Add(time.Hour)))
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	clock := timex.NewManualClock(epoch)
	codec := NewTokenCodec([]byte("secret"), clock)

	tok, err := codec.Sign(payload(models.TokenTypeAccess, time.Minute))
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)

	_, err = codec.Verify(tok)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
	assert.NotErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	clock := timex.NewManualClock(epoch)
	tok, err := NewTokenCodec([]byte("right-secret"), clock).Sign(payload(models.TokenTypeAccess, time.Hour))
	require.NoError(t, err)

	_, err = NewTokenCodec([]byte("wrong-secret"), clock).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("secret"), timex.NewManualClock(epoch))

	for _, in := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := codec.Verify(in)
		assert.ErrorIs(t, err, common.ErrInvalidToken, in)
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("secret"), timex.NewManualClock(epoch))
	tok, err := codec.Sign(payload(models.TokenTypeAccess, time.Hour))
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	other, err := codec.Sign(TokenPayload{UserID: 7, Code: "ZZZZZZZZZZZZZZZZZZZZ", Type: models.TokenTypeAccess, ExpiresAt: epoch.Add(time.Hour)})
	require.NoError(t, err)
	parts[1] = strings.Split(other, ".")[1]

	_, err = codec.Verify(strings.Join(parts, "."))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(epoch.Add(time.Hour))},
		UserID:           42, Code: "c", Type: models.TokenTypeAccess,
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenCodec([]byte("secret"), timex.NewManualClock(epoch)).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_MissingClaims(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		claims Claims
	}{
		{"no expiry", Claims{UserID: 1, Code: "c", Type: models.TokenTypeAccess}},
		{"no user", Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(epoch.Add(time.Hour))}, Code: "c", Type: models.TokenTypeAccess}},
		{"no code", Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(epoch.Add(time.Hour))}, UserID: 1, Type: models.TokenTypeAccess}},
		{"unknown type", Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(epoch.Add(time.Hour))}, UserID: 1, Code: "c", Type: "id"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString([]byte("secret"))
			require.NoError(t, err)

			_, err = NewTokenCodec([]byte("secret"), timex.NewManualClock(epoch)).Verify(tok)
			assert.ErrorIs(t, err, common.ErrInvalidToken)
		})
	}
}

func TestSign_RejectsIncompletePayload(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("secret"), nil)
	_, err := codec.Sign(TokenPayload{UserID: 1, Type: models.TokenTypeAccess, ExpiresAt: epoch})
	assert.ErrorIs(t, err, common.ErrorValidation)
}
