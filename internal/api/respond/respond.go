// Package respond contains the responses shared by route handlers.
package respond

import (
	"log/slog"
	"net/http"

	apiError "github.com/matt-dz/recipebox/internal/api/error"
	"github.com/matt-dz/recipebox/internal/api/requestid"
	"github.com/matt-dz/recipebox/internal/env"
	"github.com/matt-dz/recipebox/internal/form"
	"github.com/matt-dz/recipebox/internal/render"
)

// Page renders the named page for the request's viewer, consuming pending
// flash messages.
func Page(w http.ResponseWriter, r *http.Request, status int, name, title string, data any, errs form.Errors) {
	ctx := r.Context()
	e := env.EnvFromCtx(ctx)

	p := render.NewPage(w, r, title, data)
	if errs.Any() {
		p.Errors = errs
	}
	if err := e.Render.Respond(w, r, status, name, p); err != nil {
		Internal(w, r, "failed to render page", err)
	}
}

// Internal logs err and renders a 500 page carrying the request id.
func Internal(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	e := env.EnvFromCtx(ctx)
	e.Logger.ErrorContext(ctx, msg, slog.Any("error", err))
	e.Render.Error(w, r, apiError.Internal(requestid.ExtractRequestID(ctx)))
}

// Error renders the error page for code.
func Error(w http.ResponseWriter, r *http.Request, code apiError.ErrorCode, msg string) {
	ctx := r.Context()
	env.EnvFromCtx(ctx).Render.Error(w, r, apiError.New(code, msg, requestid.ExtractRequestID(ctx)))
}

// RedirectWithFlash queues a flash message and redirects with a 303.
func RedirectWithFlash(w http.ResponseWriter, r *http.Request, url string, level render.FlashLevel, msg string) {
	render.SetFlash(w, r, level, msg)
	render.Redirect(w, r, url)
}
