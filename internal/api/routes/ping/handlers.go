// Package ping contains the liveness check.
package ping

import (
	"net/http"

	"github.com/matt-dz/recipebox/internal/env"
	"github.com/matt-dz/recipebox/internal/render"
)

type PingResponse struct {
	Status string `json:"status"`
}

// HandlePing reports that the server is up. It does not touch the database.
func HandlePing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := render.JSON(w, http.StatusOK, PingResponse{Status: "ok"}); err != nil {
		env.EnvFromCtx(ctx).Logger.ErrorContext(ctx, "failed to write ping response")
	}
}
