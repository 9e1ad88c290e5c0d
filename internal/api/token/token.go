// Package token contains utilities for session cookies.
package token

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/matt-dz/recipebox/internal/config"
	"github.com/matt-dz/recipebox/internal/jwt"
)

const (
	rememberLifetime = int(jwt.SessionDuration / time.Second)
)

var ErrMissingSecret = errors.New("app secret not configured")

func SessionCookieName(conf config.Config) string {
	if conf.IsProd() {
		return "__Host-session"
	}
	return "session"
}

func secret(conf config.Config) ([]byte, error) {
	if conf.AppSecret.Value == nil {
		return nil, ErrMissingSecret
	}
	return []byte(*conf.AppSecret.Value), nil
}

// NewSession signs a session token for the user.
func NewSession(params jwt.SessionParams, conf config.Config) (string, error) {
	key, err := secret(conf)
	if err != nil {
		return "", err
	}
	token, err := jwt.GenerateJWT(params, key, conf.AppSecret.Version)
	if err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return token, nil
}

// ParseSession reads and validates the session cookie on r.
func ParseSession(r *http.Request, conf config.Config) (jwt.SessionParams, error) {
	cookie, err := r.Cookie(SessionCookieName(conf))
	if err != nil {
		return jwt.SessionParams{}, err
	}
	key, err := secret(conf)
	if err != nil {
		return jwt.SessionParams{}, err
	}
	return jwt.ValidateJWT(cookie.Value, conf.AppSecret.Version, key)
}

// NewSessionCookie wraps token in a cookie. Without remember the cookie
// lasts until the browser closes; with it the cookie lasts as long as the
// token.
func NewSessionCookie(token string, remember bool, conf config.Config) *http.Cookie {
	cookie := &http.Cookie{
		Name:     SessionCookieName(conf),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   conf.IsProd(),
	}
	if remember {
		cookie.MaxAge = rememberLifetime
	}
	return cookie
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(conf config.Config) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName(conf),
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   conf.IsProd(),
		MaxAge:   -1,
	}
}
