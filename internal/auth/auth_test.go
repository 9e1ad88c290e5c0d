package auth

import (
	"context"
	"testing"
)

func TestFromCtx(t *testing.T) {
	if v := FromCtx(context.Background()); v != nil {
		t.Fatalf("FromCtx on empty context = %+v, want nil", v)
	}

	ctx := WithViewer(context.Background(), Viewer{ID: 3, Username: "ana"})
	v := FromCtx(ctx)
	if v == nil {
		t.Fatal("FromCtx returned nil after WithViewer")
	}
	if v.ID != 3 || v.Username != "ana" {
		t.Errorf("FromCtx = %+v, want {3 ana}", *v)
	}
}
