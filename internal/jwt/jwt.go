// Package jwt provides functions for generating and validating session JWTs
package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionDuration is the lifetime of a session token. A session cookie
	// outlives neither the browser nor the token.
	SessionDuration = 14 * 24 * time.Hour
)

var ErrInvalidClaims = errors.New("invalid session claims")

type SessionParams struct {
	UserID   int64
	Username string
}

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func GenerateJWT(params SessionParams, secret []byte, version string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Username: params.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(params.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionDuration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = version

	signedKey, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signedKey, nil
}

// ValidateJWT verifies the token signature, expiry and key version and
// returns the session it carries.
func ValidateJWT(rawToken, version string, secret []byte) (SessionParams, error) {
	parserFunc := func(token *jwt.Token) (any, error) {
		kidVal, ok := token.Header["kid"].(string)
		if !ok {
			return nil, fmt.Errorf("missing/invalid kid value")
		}

		if kidVal != version {
			return nil, fmt.Errorf("verifying KID value, value=%q", kidVal)
		}

		return secret, nil
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(rawToken, &claims, parserFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return SessionParams{}, err
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || claims.Username == "" {
		return SessionParams{}, ErrInvalidClaims
	}

	return SessionParams{UserID: id, Username: claims.Username}, nil
}
