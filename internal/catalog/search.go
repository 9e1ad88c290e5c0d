package catalog

import (
	"context"
	"fmt"

	"github.com/matt-dz/recipebox/internal/database"
)

// Result is one page of a catalog listing.
type Result struct {
	Recipes []database.RecipeCard `json:"recipes"`
	Page    Page                  `json:"page"`
}

// Search counts the recipes matching q, resolves the requested page and
// loads it.
func Search(ctx context.Context, db database.Querier, q Query, page int) (Result, error) {
	count := q.BuildCount()
	total, err := db.CountRecipeCards(ctx, count.SQL, count.Args)
	if err != nil {
		return Result{}, fmt.Errorf("counting recipes: %w", err)
	}

	p := Paginate(total, page, PageSize)
	if total == 0 {
		return Result{Recipes: []database.RecipeCard{}, Page: p}, nil
	}

	stmt := q.Build(p.Size, p.Offset())
	recipes, err := db.SelectRecipeCards(ctx, stmt.SQL, stmt.Args)
	if err != nil {
		return Result{}, fmt.Errorf("selecting recipes: %w", err)
	}
	return Result{Recipes: recipes, Page: p}, nil
}

// Top returns the first n recipes of q without counting.
func Top(ctx context.Context, db database.Querier, q Query, n int) ([]database.RecipeCard, error) {
	stmt := q.Build(n, 0)
	recipes, err := db.SelectRecipeCards(ctx, stmt.SQL, stmt.Args)
	if err != nil {
		return nil, fmt.Errorf("selecting recipes: %w", err)
	}
	return recipes, nil
}
