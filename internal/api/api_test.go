package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"

	"github.com/matt-dz/recipebox/internal/config"
	"github.com/matt-dz/recipebox/internal/database"
	"github.com/matt-dz/recipebox/internal/env"
	"github.com/matt-dz/recipebox/internal/filestore"
	"github.com/matt-dz/recipebox/internal/metrics"
	"github.com/matt-dz/recipebox/internal/render"
)

func newTestRouter(t *testing.T, images filestore.Store) (http.Handler, *database.MockQuerier) {
	t.Helper()
	q := database.NewMockQuerier(gomock.NewController(t))
	rr, err := render.New(images)
	if err != nil {
		t.Fatalf("render.New() error = %v", err)
	}
	reg := prometheus.NewRegistry()
	secret := config.AppSecretValue("this-is-a-very-long-secret-key-with-more-than-32-bytes")
	e := env.New(nil, &database.Database{Querier: q}, images, metrics.New(reg), rr, config.Config{
		Env:       config.EnvDev,
		AppSecret: config.AppSecret{Value: &secret, Version: "1"},
	})
	return Router(e, reg), q
}

func TestRouter_Ping(t *testing.T) {
	h, _ := newTestRouter(t, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("GET /ping = %d %s", w.Code, w.Body.String())
	}
}

func TestRouter_ProtectedRoutesRedirect(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	for _, target := range []string{"/add-recipe/", "/my-recipes/", "/profile/", "/recipe/soup/edit/", "/profile/ana/"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

		want := "/login/?" + url.Values{"next": {target}}.Encode()
		if w.Code != http.StatusSeeOther || w.Header().Get("Location") != want {
			t.Errorf("GET %s = %d %q, want 303 %q", target, w.Code, w.Header().Get("Location"), want)
		}
	}
}

func TestRouter_NotFound(t *testing.T) {
	h, _ := newTestRouter(t, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere/", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	h, _ := newTestRouter(t, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/recipes/", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}

func TestRouter_Metrics(t *testing.T) {
	h, _ := newTestRouter(t, nil)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `route="/ping"`) {
		t.Errorf("metrics missing ping request:\n%s", w.Body.String())
	}
}

func TestRouter_Media(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "recipes"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "recipes", "soup.jpg"), []byte("jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}
	h, _ := newTestRouter(t, filestore.NewLocal(dir, "/media"))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/media/recipes/soup.jpg", nil))
	if w.Code != http.StatusOK || w.Body.String() != "jpeg" {
		t.Errorf("GET image = %d %q", w.Code, w.Body.String())
	}
}
