// Package auth holds the credential primitives of the server: the signed
// token codec and the salted password hasher.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
	"github.com/dmitrijs2005/accountkeeper/internal/timex"
	"github.com/golang-jwt/jwt/v5"
)

// TokenPayload is what a signed token carries. Code is the lookup key of
// the matching user_tokens row.
type TokenPayload struct {
	UserID    int64
	Code      string
	Type      models.TokenType
	ExpiresAt time.Time
}

// Claims are the registered claims plus the token row coordinates.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64            `json:"uid"`
	Code   string           `json:"code"`
	Type   models.TokenType `json:"typ"`
}

// TokenCodec signs and verifies HS256 tokens. It keeps no state besides the
// secret and the clock.
type TokenCodec struct {
	secret []byte
	clock  timex.Clock
}

func NewTokenCodec(secret []byte, clock timex.Clock) *TokenCodec {
	if clock == nil {
		clock = timex.SystemClock{}
	}
	return &TokenCodec{secret: secret, clock: clock}
}

func (c *TokenCodec) Sign(p TokenPayload) (string, error) {
	if p.UserID <= 0 || p.Code == "" || !p.Type.Valid() {
		return "", fmt.Errorf("%w: incomplete token payload", common.ErrorValidation)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(p.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(c.clock.Now()),
		},
		UserID: p.UserID,
		Code:   p.Code,
		Type:   p.Type,
	})

	return token.SignedString(c.secret)
}

// Verify returns common.ErrTokenExpired for an otherwise valid token past its
// expiry and common.ErrInvalidToken for everything else that is wrong with it.
func (c *TokenCodec) Verify(tokenString string) (*TokenPayload, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if claims.UserID <= 0 || claims.Code == "" || !claims.Type.Valid() {
		return nil, common.ErrInvalidToken
	}

	return &TokenPayload{
		UserID:    claims.UserID,
		Code:      claims.Code,
		Type:      claims.Type,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
