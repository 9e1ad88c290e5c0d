// Package recipe creates, edits and deletes recipes together with their
// ingredients, instructions and images.
package recipe

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gosimple/slug"

	"github.com/matt-dz/recipebox/internal/database"
)

const (
	maxSlugLength = 50
	fallbackSlug  = "recipe"
)

// Slugify turns a title into a URL slug. Titles without any usable
// characters become "recipe".
func Slugify(title string) string {
	s := slug.Make(title)
	if len(s) > maxSlugLength {
		s = strings.TrimRight(s[:maxSlugLength], "-")
	}
	if s == "" {
		return fallbackSlug
	}
	return s
}

// UniqueSlug returns the first free slug among base, base-1, base-2, ...
// The recipe excludeID is ignored by the check so an edited recipe may keep
// its own slug.
func UniqueSlug(ctx context.Context, q database.Querier, title string, excludeID int64) (string, error) {
	base := Slugify(title)
	candidate := base
	for i := 1; ; i++ {
		exists, err := q.RecipeSlugExists(ctx, database.RecipeSlugExistsParams{
			Slug:      candidate,
			ExcludeID: excludeID,
		})
		if err != nil {
			return "", fmt.Errorf("checking slug %q: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(i)
	}
}
