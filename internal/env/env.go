// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"

	"github.com/matt-dz/recipebox/internal/config"
	"github.com/matt-dz/recipebox/internal/database"
	"github.com/matt-dz/recipebox/internal/filestore"
	"github.com/matt-dz/recipebox/internal/log"
	"github.com/matt-dz/recipebox/internal/metrics"
	"github.com/matt-dz/recipebox/internal/render"
)

type envKeyType struct{}

var envKey envKeyType

type Env struct {
	Logger   *slog.Logger
	Database *database.Database
	Images   filestore.Store
	Metrics  *metrics.Metrics
	Render   *render.Renderer
	Config   config.Config
}

func New(
	lg *slog.Logger,
	db *database.Database,
	images filestore.Store,
	m *metrics.Metrics,
	rr *render.Renderer,
	conf config.Config,
) *Env {
	if lg == nil {
		lg = log.NullLogger()
	}

	return &Env{
		Logger:   lg,
		Database: db,
		Images:   images,
		Metrics:  m,
		Render:   rr,
		Config:   conf,
	}
}

func Null() *Env {
	return &Env{
		Logger: log.NullLogger(),
	}
}

// WithCtx stores env on the context.
func WithCtx(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey, env)
}

// EnvFromCtx returns the Env stored on ctx, or an Env with a null logger.
func EnvFromCtx(ctx context.Context) *Env {
	if env, ok := ctx.Value(envKey).(*Env); ok && env != nil {
		return env
	}
	return Null()
}
