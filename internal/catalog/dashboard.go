package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/matt-dz/recipebox/internal/auth"
	"github.com/matt-dz/recipebox/internal/database"
)

const (
	SectionSize       = 6
	PopularCategories = 8
	TrendingWindow    = 30 * 24 * time.Hour
)

// Dashboard is the landing page aggregation. Following and Recommended are
// nil for anonymous viewers, and Recommended is nil when the viewer has no
// favorites with a category.
type Dashboard struct {
	Trending          []database.RecipeCard    `json:"trending"`
	TopRated          []database.RecipeCard    `json:"top_rated"`
	Recent            []database.RecipeCard    `json:"recent"`
	PopularCategories []database.CategoryCount `json:"popular_categories"`
	Following         []database.RecipeCard    `json:"following"`
	Recommended       []database.RecipeCard    `json:"recommended"`
}

func BuildDashboard(ctx context.Context, db database.Querier, viewer *auth.Viewer, now time.Time) (Dashboard, error) {
	var (
		d   Dashboard
		err error
	)

	d.Trending, err = Top(ctx, db, Query{
		Sort:         SortMostViewed,
		CreatedSince: now.Add(-TrendingWindow),
	}, SectionSize)
	if err != nil {
		return Dashboard{}, fmt.Errorf("trending: %w", err)
	}

	d.TopRated, err = Top(ctx, db, Query{Sort: sortTopRated, Reviewed: true}, SectionSize)
	if err != nil {
		return Dashboard{}, fmt.Errorf("top rated: %w", err)
	}

	d.Recent, err = Top(ctx, db, Query{Sort: SortNewest}, SectionSize)
	if err != nil {
		return Dashboard{}, fmt.Errorf("recent: %w", err)
	}

	d.PopularCategories, err = db.ListPopularCategories(ctx, PopularCategories)
	if err != nil {
		return Dashboard{}, fmt.Errorf("popular categories: %w", err)
	}

	if viewer == nil {
		return d, nil
	}

	followees, err := db.ListFolloweeIDs(ctx, viewer.ID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("listing followees: %w", err)
	}
	if len(followees) == 0 {
		d.Following = []database.RecipeCard{}
	} else {
		d.Following, err = Top(ctx, db, Query{Sort: SortNewest, AuthorIDs: followees}, SectionSize)
		if err != nil {
			return Dashboard{}, fmt.Errorf("following feed: %w", err)
		}
	}

	categories, err := db.ListFavoriteCategoryIDs(ctx, viewer.ID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("listing favorite categories: %w", err)
	}
	if len(categories) == 0 {
		return d, nil
	}
	favorites, err := db.ListFavoriteRecipeIDs(ctx, viewer.ID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("listing favorites: %w", err)
	}
	d.Recommended, err = Top(ctx, db, Query{
		Sort:        sortTopRated,
		CategoryIDs: categories,
		ExcludeIDs:  favorites,
	}, SectionSize)
	if err != nil {
		return Dashboard{}, fmt.Errorf("recommended: %w", err)
	}

	return d, nil
}
