package env

import (
	"context"
	"testing"

	"github.com/matt-dz/recipebox/internal/config"
)

func TestEnvFromCtx(t *testing.T) {
	e := New(nil, nil, nil, nil, nil, config.Config{Env: config.EnvProd})
	if e.Logger == nil {
		t.Fatal("New() should default to a null logger")
	}

	got := EnvFromCtx(WithCtx(context.Background(), e))
	if got != e {
		t.Errorf("EnvFromCtx() = %p, want %p", got, e)
	}
	if !got.Config.IsProd() {
		t.Error("expected config to travel with env")
	}
}

func TestEnvFromCtx_Missing(t *testing.T) {
	got := EnvFromCtx(context.Background())
	if got == nil || got.Logger == nil {
		t.Fatal("expected a null env with a logger")
	}
	got.Logger.Info("discarded")
}
