// Package render writes HTML pages and their JSON equivalents.
package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/goccy/go-json"

	apiError "github.com/matt-dz/recipebox/internal/api/error"
	"github.com/matt-dz/recipebox/internal/api/requestid"
	"github.com/matt-dz/recipebox/internal/auth"
	"github.com/matt-dz/recipebox/internal/form"
)

//go:embed templates
var templateFS embed.FS

const (
	layoutTemplate = "templates/layout.html"
	pagePattern    = "templates/pages/*.html"
)

// ImageURLs resolves a stored image key into a URL.
type ImageURLs interface {
	URL(key string) string
}

// Page is the data every template receives. Data holds the page's own view
// model.
type Page struct {
	Title     string       `json:"-"`
	Viewer    *auth.Viewer `json:"viewer"`
	Flashes   []Flash      `json:"flashes"`
	Errors    form.Errors  `json:"errors,omitempty"`
	Data      any          `json:"data"`
	RequestID string       `json:"-"`
}

// NewPage fills the request scoped parts of a page: the viewer, pending
// flashes and the request id. Flashes are consumed.
func NewPage(w http.ResponseWriter, r *http.Request, title string, data any) Page {
	return Page{
		Title:     title,
		Viewer:    auth.FromCtx(r.Context()),
		Flashes:   PopFlashes(w, r),
		Data:      data,
		RequestID: requestid.ExtractRequestID(r.Context()),
	}
}

type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded templates. Pages are addressed by file name
// without extension ("recipe_detail").
func New(images ImageURLs) (*Renderer, error) {
	layout, err := template.New("layout").Funcs(funcs(images)).ParseFS(templateFS, layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	files, err := fs.Glob(templateFS, pagePattern)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}

	rr := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		t, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning layout: %w", err)
		}
		if t, err = t.ParseFS(templateFS, file); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", file, err)
		}
		rr.pages[strings.TrimSuffix(path.Base(file), ".html")] = t
	}
	return rr, nil
}

// HTML executes the named page into w. The page is rendered to a buffer
// first so a template failure never leaves a half written response.
func (rr *Renderer) HTML(w http.ResponseWriter, status int, name string, p Page) error {
	if rr == nil {
		return errors.New("renderer not configured")
	}
	t, ok := rr.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", p); err != nil {
		return fmt.Errorf("executing %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Respond renders the page as HTML, or as JSON when the client asks for it.
func (rr *Renderer) Respond(w http.ResponseWriter, r *http.Request, status int, name string, p Page) error {
	if WantsJSON(r) {
		return JSON(w, status, p)
	}
	return rr.HTML(w, status, name, p)
}

// Error renders a failure page carrying the error code and request id.
func (rr *Renderer) Error(w http.ResponseWriter, r *http.Request, e *apiError.Error) {
	if WantsJSON(r) {
		_ = JSON(w, e.Status, e)
		return
	}
	p := Page{
		Title:     http.StatusText(e.Status),
		Viewer:    auth.FromCtx(r.Context()),
		Data:      e,
		RequestID: e.ErrorID,
	}
	if err := rr.HTML(w, e.Status, "error", p); err != nil {
		http.Error(w, e.Message, e.Status)
	}
}

func JSON(w http.ResponseWriter, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}

// WantsJSON reports whether the Accept header lists application/json.
func WantsJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mediaType == "application/json" {
			return true
		}
	}
	return false
}

// Redirect sends a 303 so the browser follows up with a GET.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}
