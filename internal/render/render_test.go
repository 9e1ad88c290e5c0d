package render

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	apiError "github.com/matt-dz/recipebox/internal/api/error"
	"github.com/matt-dz/recipebox/internal/auth"
	"github.com/matt-dz/recipebox/internal/catalog"
	"github.com/matt-dz/recipebox/internal/database"
	"github.com/matt-dz/recipebox/internal/form"
)

type prefixURLs string

func (p prefixURLs) URL(key string) string { return string(p) + "/" + key }

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	rr, err := New(prefixURLs("/media"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return rr
}

func TestNew_ParsesEveryPage(t *testing.T) {
	rr := newRenderer(t)
	for _, name := range []string{
		"dashboard", "catalog", "my_recipes", "recipe_detail", "recipe_form",
		"recipe_delete", "register", "login", "logout", "profile", "error",
	} {
		if _, ok := rr.pages[name]; !ok {
			t.Errorf("page %q not parsed", name)
		}
	}
}

func TestHTML_Dashboard(t *testing.T) {
	rr := newRenderer(t)
	img := "recipes/soup.png"
	cat := "Soup"
	d := catalog.Dashboard{
		Recent: []database.RecipeCard{{
			Title: "Tomato <Soup>", Slug: "tomato-soup", AuthorUsername: "ana",
			CategoryName: &cat, Image: &img, PrepTime: 5, CookTime: 10,
			AverageRating: 4.3, ReviewCount: 2,
		}},
		PopularCategories: []database.CategoryCount{{Category: database.Category{Name: "Soup", Slug: "soup"}, RecipeCount: 3}},
	}

	w := httptest.NewRecorder()
	err := rr.HTML(w, http.StatusOK, "dashboard", Page{
		Title:   "Dashboard",
		Viewer:  &auth.Viewer{ID: 1, Username: "ana"},
		Flashes: []Flash{{Level: FlashSuccess, Message: "Welcome back, ana!"}},
		Data:    d,
	})
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}

	body := w.Body.String()
	for _, want := range []string{
		"Tomato &lt;Soup&gt;",
		`href="/recipe/tomato-soup/"`,
		`src="/media/recipes/soup.png"`,
		"15 min",
		"4.3 stars (2)",
		"Welcome back, ana!",
		`href="/recipes/?category=soup"`,
		"Log out",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestHTML_UnknownPage(t *testing.T) {
	rr := newRenderer(t)
	w := httptest.NewRecorder()
	if err := rr.HTML(w, http.StatusOK, "nope", Page{}); err == nil {
		t.Error("HTML() expected an error for an unknown page")
	}
	if w.Body.Len() != 0 {
		t.Errorf("body written for an unknown page: %q", w.Body.String())
	}
}

func TestHTML_FieldErrors(t *testing.T) {
	rr := newRenderer(t)
	w := httptest.NewRecorder()
	data := struct {
		Form struct {
			Username, Email string
		}
	}{}
	err := rr.HTML(w, http.StatusUnprocessableEntity, "register", Page{
		Errors: form.Errors{"email": "Enter a valid email address."},
		Data:   data,
	})
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Enter a valid email address.") {
		t.Error("field error not rendered")
	}
}

func TestRespond_JSON(t *testing.T) {
	rr := newRenderer(t)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()

	err := rr.Respond(w, r, http.StatusOK, "dashboard", Page{Data: map[string]int{"answer": 42}})
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}

	var got struct {
		Data map[string]int `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if got.Data["answer"] != 42 {
		t.Errorf("data = %v", got.Data)
	}
}

func TestError(t *testing.T) {
	rr := newRenderer(t)
	e := apiError.New(apiError.RecipeNotFound, "Recipe not found", "req-1")

	t.Run("html", func(t *testing.T) {
		w := httptest.NewRecorder()
		rr.Error(w, httptest.NewRequest(http.MethodGet, "/", nil), e)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "req-1") {
			t.Error("error id not rendered")
		}
	})

	t.Run("json", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		rr.Error(w, r, e)

		var got apiError.Error
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if got.Code != apiError.RecipeNotFound || got.ErrorID != "req-1" {
			t.Errorf("body = %+v", got)
		}
	})
}

func TestWantsJSON(t *testing.T) {
	tests := []struct {
		accept string
		want   bool
	}{
		{accept: "", want: false},
		{accept: "text/html,application/xhtml+xml", want: false},
		{accept: "application/json", want: true},
		{accept: "text/html, application/json;q=0.9", want: true},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept", tt.accept)
		if got := WantsJSON(r); got != tt.want {
			t.Errorf("WantsJSON(%q) = %v, want %v", tt.accept, got, tt.want)
		}
	}
}

func TestFuncs_PageURL(t *testing.T) {
	pageURL := funcs(nil)["pageURL"].(func(url.Values, int) string)
	v := url.Values{"q": {"soup"}, "page": {"1"}}

	if got := pageURL(v, 3); got != "?page=3&q=soup" {
		t.Errorf("pageURL() = %q", got)
	}
	if v.Get("page") != "1" {
		t.Error("pageURL() modified its input")
	}
}
