// Package auth carries the authenticated viewer of a request.
package auth

import "context"

// Viewer is the user a request acts on behalf of.
type Viewer struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type viewerKey struct{}

func WithViewer(ctx context.Context, v Viewer) context.Context {
	return context.WithValue(ctx, viewerKey{}, v)
}

// FromCtx returns the viewer stored on ctx, or nil for anonymous requests.
func FromCtx(ctx context.Context) *Viewer {
	v, ok := ctx.Value(viewerKey{}).(Viewer)
	if !ok {
		return nil
	}
	return &v
}
