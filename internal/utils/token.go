package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token validation failure kinds. Callers distinguish them with
// errors.Is; the session gate collapses all of them to 401 but logs the
// concrete kind.
var (
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenInvalid        = errors.New("token malformed or signature invalid")
	ErrTokenMissingSubject = errors.New("token missing subject claim")
)

// TokenClaims is the claim set carried by a session token.
type TokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim as the internal user identity.
func (c *TokenClaims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrTokenMissingSubject
	}
	return uint(id), nil
}

// GenerateToken signs an HS256 session token for the given user.
func GenerateToken(secret string, userID uint, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and returns the claims.
// Failures map onto exactly one of ErrTokenExpired, ErrTokenInvalid or
// ErrTokenMissingSubject.
func ParseToken(secret, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrTokenInvalid
		}
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.Subject == "" {
		return nil, ErrTokenMissingSubject
	}

	return claims, nil
}
