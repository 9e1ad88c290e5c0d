// Package api sets up and starts the web server with routing and
// middleware.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apiError "github.com/matt-dz/recipebox/internal/api/error"
	"github.com/matt-dz/recipebox/internal/api/middleware"
	"github.com/matt-dz/recipebox/internal/api/respond"
	"github.com/matt-dz/recipebox/internal/api/routes/ping"
	"github.com/matt-dz/recipebox/internal/api/routes/recipes"
	"github.com/matt-dz/recipebox/internal/api/routes/users"
	"github.com/matt-dz/recipebox/internal/env"
	"github.com/matt-dz/recipebox/internal/filestore"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second

	// account form submissions allowed per client IP each window
	accountAttempts = 10
	accountWindow   = time.Minute
)

func addRoutes(router chi.Router) {
	router.Get("/", recipes.HandleDashboard)
	router.Get("/dashboard/", recipes.HandleDashboard)
	router.Get("/recipes/", recipes.HandleCatalog)
	router.Get("/recipe/{slug}/", recipes.HandleDetail)

	router.Get("/register/", users.HandleRegisterPage)
	router.Get("/login/", users.HandleLoginPage)
	router.Group(func(r chi.Router) {
		r.Use(middleware.Throttle(accountAttempts, accountWindow))
		r.Post("/register/", users.HandleRegister)
		r.Post("/login/", users.HandleLogin)
	})
	router.Get("/logout/", users.HandleLogoutPage)
	router.Post("/logout/", users.HandleLogout)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)

		r.Post("/recipe/{slug}/review/", recipes.HandleReview)
		r.Post("/recipe/{slug}/favorite/", recipes.HandleFavorite)
		r.Get("/recipe/{slug}/edit/", recipes.HandleEditRecipe)
		r.Post("/recipe/{slug}/edit/", recipes.HandleUpdateRecipe)
		r.Get("/recipe/{slug}/delete/", recipes.HandleConfirmDelete)
		r.Post("/recipe/{slug}/delete/", recipes.HandleDeleteRecipe)
		r.Get("/add-recipe/", recipes.HandleNewRecipe)
		r.Post("/add-recipe/", recipes.HandleCreateRecipe)
		r.Get("/my-recipes/", recipes.HandleMyRecipes)

		r.Get("/profile/", users.HandleOwnProfile)
		r.Post("/profile/", users.HandleUpdateProfile)
		r.Get("/profile/{username}/", users.HandleProfile)
		r.Post("/profile/{username}/follow/", users.HandleFollow)
	})
}

// addMedia serves images from the local volume. S3 images are served by
// the bucket.
func addMedia(router chi.Router, images filestore.Store) {
	local, ok := images.(*filestore.Local)
	if !ok {
		return
	}
	prefix := local.URLPrefix()
	router.Handle(prefix+"/*", http.StripPrefix(prefix, local.FileServer().Handler()))
}

// Router builds the application handler. gatherer backs /metrics.
func Router(e *env.Env, gatherer prometheus.Gatherer) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(e.Logger))
	router.Use(middleware.InjectEnv(e))
	router.Use(middleware.Recover)
	router.Use(middleware.Metrics)
	router.Use(middleware.Authenticate)

	router.Get("/ping", ping.HandlePing)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	addMedia(router, e.Images)
	addRoutes(router)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, r, apiError.PageNotFound, "Page not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, r, apiError.MethodNotAllowed, "Method not allowed")
	})
	return router
}

// Start serves the application on the configured address until ctx is
// cancelled, then drains in-flight requests.
func Start(ctx context.Context, e *env.Env, gatherer prometheus.Gatherer) error {
	server := &http.Server{
		Addr:              e.Config.ListenAddr,
		Handler:           Router(e, gatherer),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		e.Logger.InfoContext(ctx, "listening", slog.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	e.Logger.InfoContext(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
