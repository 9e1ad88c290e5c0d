package recipe

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/matt-dz/recipebox/internal/database"
	"go.uber.org/mock/gomock"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "simple", title: "Chocolate Chip Cookies", want: "chocolate-chip-cookies"},
		{name: "punctuation and spacing", title: "  Spicy   Thai Curry!! ", want: "spicy-thai-curry"},
		{name: "nothing usable", title: "!!!", want: "recipe"},
		{name: "truncated", title: strings.Repeat("a", 60), want: strings.Repeat("a", 50)},
		{name: "truncated on separator", title: strings.Repeat("a", 49) + " bcd", want: strings.Repeat("a", 49)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestUniqueSlug(t *testing.T) {
	t.Run("free on first try", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := database.NewMockQuerier(ctrl)
		q.EXPECT().RecipeSlugExists(gomock.Any(), database.RecipeSlugExistsParams{Slug: "pancakes"}).
			Return(false, nil)

		got, err := UniqueSlug(context.Background(), q, "Pancakes", 0)
		if err != nil {
			t.Fatalf("UniqueSlug() error = %v", err)
		}
		if got != "pancakes" {
			t.Errorf("UniqueSlug() = %q, want %q", got, "pancakes")
		}
	})

	t.Run("appends counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := database.NewMockQuerier(ctrl)
		gomock.InOrder(
			q.EXPECT().RecipeSlugExists(gomock.Any(), database.RecipeSlugExistsParams{Slug: "pancakes", ExcludeID: 9}).
				Return(true, nil),
			q.EXPECT().RecipeSlugExists(gomock.Any(), database.RecipeSlugExistsParams{Slug: "pancakes-1", ExcludeID: 9}).
				Return(true, nil),
			q.EXPECT().RecipeSlugExists(gomock.Any(), database.RecipeSlugExistsParams{Slug: "pancakes-2", ExcludeID: 9}).
				Return(false, nil),
		)

		got, err := UniqueSlug(context.Background(), q, "Pancakes", 9)
		if err != nil {
			t.Fatalf("UniqueSlug() error = %v", err)
		}
		if got != "pancakes-2" {
			t.Errorf("UniqueSlug() = %q, want %q", got, "pancakes-2")
		}
	})

	t.Run("query error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := database.NewMockQuerier(ctrl)
		boom := errors.New("boom")
		q.EXPECT().RecipeSlugExists(gomock.Any(), gomock.Any()).Return(false, boom)

		if _, err := UniqueSlug(context.Background(), q, "Pancakes", 0); !errors.Is(err, boom) {
			t.Errorf("UniqueSlug() error = %v, want %v", err, boom)
		}
	})
}
