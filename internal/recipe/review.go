package recipe

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/matt-dz/recipebox/internal/auth"
	"github.com/matt-dz/recipebox/internal/database"
	"github.com/matt-dz/recipebox/internal/form"
)

// ReviewForm is a rating left on a recipe. A second review by the same user
// replaces the first.
type ReviewForm struct {
	Rating  int    `json:"rating" form:"rating" validate:"gte=1,lte=5"`
	Comment string `json:"comment" form:"comment" validate:"max=2000"`
}

func ParseReview(v url.Values) (ReviewForm, form.Errors) {
	errs := form.Errors{}
	f := ReviewForm{Comment: strings.TrimSpace(v.Get("comment"))}
	f.Rating = requiredInt(v, "rating", errs)
	for field, msg := range form.Validate(f) {
		errs.Add(field, msg)
	}
	return f, errs
}

// SubmitReview stores the viewer's review of a recipe.
func SubmitReview(ctx context.Context, q database.Querier, viewer auth.Viewer, recipeID int64, f ReviewForm) (database.Review, error) {
	r, err := q.UpsertReview(ctx, database.UpsertReviewParams{
		RecipeID: recipeID,
		UserID:   viewer.ID,
		Rating:   int32(f.Rating),
		Comment:  f.Comment,
	})
	if err != nil {
		return database.Review{}, fmt.Errorf("upserting review for recipe %d: %w", recipeID, err)
	}
	return r, nil
}
