// Package middleware contains middleware functions for the web server.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	"github.com/oklog/ulid/v2"

	apiError "github.com/matt-dz/recipebox/internal/api/error"
	"github.com/matt-dz/recipebox/internal/api/requestid"
	"github.com/matt-dz/recipebox/internal/api/token"
	"github.com/matt-dz/recipebox/internal/auth"
	"github.com/matt-dz/recipebox/internal/env"
	"github.com/matt-dz/recipebox/internal/log"
	"github.com/matt-dz/recipebox/internal/render"
)

// LoginPath is where anonymous visitors of protected pages are sent.
const LoginPath = "/login/"

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			return []slog.Attr{slog.String("log_id", requestid.ExtractRequestID(r.Context()))}
		},
	})
}

// AddRequestID adds a request ID to the request context.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ulid.Make().String()
		r = r.WithContext(log.AppendCtx(r.Context(), slog.String("log_id", requestID)))
		r = r.WithContext(requestid.InjectRequestID(r.Context(), requestID))
		next.ServeHTTP(w, r)
	})
}

// Authenticate attaches the viewer named by a valid session cookie. Requests
// without one continue anonymously; a cookie that fails validation is
// cleared.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e := env.EnvFromCtx(r.Context())

		session, err := token.ParseSession(r, e.Config)
		if errors.Is(err, http.ErrNoCookie) {
			next.ServeHTTP(w, r)
			return
		} else if err != nil {
			e.Logger.DebugContext(r.Context(), "discarding invalid session", slog.Any("error", err))
			http.SetCookie(w, token.ClearSessionCookie(e.Config))
			next.ServeHTTP(w, r)
			return
		}

		ctx := log.AppendCtx(r.Context(), slog.Int64("user-id", session.UserID))
		ctx = auth.WithViewer(ctx, auth.Viewer{ID: session.UserID, Username: session.Username})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser sends anonymous visitors to the login page, remembering where
// they were going. JSON clients get a 401 instead.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth.FromCtx(r.Context()) != nil {
			next.ServeHTTP(w, r)
			return
		}

		if render.WantsJSON(r) {
			e := env.EnvFromCtx(r.Context())
			e.Render.Error(w, r, apiError.New(apiError.Unauthenticated,
				"Authentication required", requestid.ExtractRequestID(r.Context())))
			return
		}

		target := r.URL.Path
		if r.Method != http.MethodGet {
			// a POST cannot be replayed after login, so return to the page
			// it was submitted from
			target = refererPath(r, target)
		}
		render.Redirect(w, r, LoginPath+"?"+url.Values{"next": {target}}.Encode())
	})
}

func refererPath(r *http.Request, fallback string) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return fallback
	}
	return ref.Path
}

// Metrics records every request under its route pattern.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e := env.EnvFromCtx(r.Context())
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		e.Metrics.ObserveRequest(r.Method, route, status, time.Since(start))
	})
}

// Recover turns a panicking handler into a 500 page.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			e := env.EnvFromCtx(r.Context())
			e.Logger.ErrorContext(r.Context(), "handler panicked", slog.Any("panic", rec))
			e.Render.Error(w, r, apiError.Internal(requestid.ExtractRequestID(r.Context())))
		}()
		next.ServeHTTP(w, r)
	})
}

// Throttle limits each client IP to requests per window. Throttled
// requests get the too many requests page.
func Throttle(requests int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			e := env.EnvFromCtx(r.Context())
			e.Logger.WarnContext(r.Context(), "request throttled", slog.String("path", r.URL.Path))
			e.Render.Error(w, r, apiError.New(apiError.TooManyRequests,
				"Too many attempts. Please wait a minute and try again.", requestid.ExtractRequestID(r.Context())))
		}),
	)
}
