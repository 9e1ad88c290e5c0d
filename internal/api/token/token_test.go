package token

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matt-dz/recipebox/internal/config"
	"github.com/matt-dz/recipebox/internal/jwt"
)

func testConfig(env string) config.Config {
	secret := config.AppSecretValue("this-is-a-very-long-secret-key-with-more-than-32-bytes")
	return config.Config{
		Env:       env,
		AppSecret: config.AppSecret{Value: &secret, Version: "1"},
	}
}

func TestSessionCookieName(t *testing.T) {
	if got := SessionCookieName(testConfig(config.EnvDev)); got != "session" {
		t.Errorf("dev cookie name = %q", got)
	}
	if got := SessionCookieName(testConfig(config.EnvProd)); got != "__Host-session" {
		t.Errorf("prod cookie name = %q", got)
	}
}

func TestNewSessionCookie(t *testing.T) {
	tests := []struct {
		name       string
		env        string
		remember   bool
		wantMaxAge int
		wantSecure bool
	}{
		{name: "browser session", env: config.EnvDev, remember: false, wantMaxAge: 0},
		{name: "remember me", env: config.EnvDev, remember: true, wantMaxAge: 14 * 24 * 60 * 60},
		{name: "prod is secure", env: config.EnvProd, remember: true, wantMaxAge: 14 * 24 * 60 * 60, wantSecure: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewSessionCookie("tok", tt.remember, testConfig(tt.env))
			if c.MaxAge != tt.wantMaxAge {
				t.Errorf("MaxAge = %d, want %d", c.MaxAge, tt.wantMaxAge)
			}
			if c.Secure != tt.wantSecure {
				t.Errorf("Secure = %v, want %v", c.Secure, tt.wantSecure)
			}
			if !c.HttpOnly || c.Path != "/" || c.SameSite != http.SameSiteLaxMode {
				t.Errorf("unexpected cookie attributes: %+v", c)
			}
		})
	}
}

func TestClearSessionCookie(t *testing.T) {
	c := ClearSessionCookie(testConfig(config.EnvDev))
	if c.MaxAge >= 0 || c.Value != "" {
		t.Errorf("ClearSessionCookie() = %+v, want expired empty cookie", c)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	conf := testConfig(config.EnvDev)

	raw, err := NewSession(jwt.SessionParams{UserID: 7, Username: "nonna"}, conf)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(NewSessionCookie(raw, false, conf))

	got, err := ParseSession(req, conf)
	if err != nil {
		t.Fatalf("ParseSession() error = %v", err)
	}
	if got.UserID != 7 || got.Username != "nonna" {
		t.Errorf("ParseSession() = %+v", got)
	}
}

func TestParseSession_Errors(t *testing.T) {
	conf := testConfig(config.EnvDev)

	t.Run("no cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if _, err := ParseSession(req, conf); !errors.Is(err, http.ErrNoCookie) {
			t.Errorf("ParseSession() error = %v, want http.ErrNoCookie", err)
		}
	})

	t.Run("tampered cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName(conf), Value: "abc.def.ghi"})
		if _, err := ParseSession(req, conf); err == nil {
			t.Error("expected error for tampered cookie")
		}
	})

	t.Run("missing secret", func(t *testing.T) {
		if _, err := NewSession(jwt.SessionParams{UserID: 1, Username: "x"}, config.Config{}); !errors.Is(err, ErrMissingSecret) {
			t.Errorf("NewSession() error = %v, want ErrMissingSecret", err)
		}
	})
}
