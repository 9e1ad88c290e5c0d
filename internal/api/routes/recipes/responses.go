package recipes

import (
	"net/url"

	"github.com/matt-dz/recipebox/internal/catalog"
	"github.com/matt-dz/recipebox/internal/database"
	"github.com/matt-dz/recipebox/internal/recipe"
)

type CatalogResponse struct {
	Recipes      []database.RecipeCard         `json:"recipes"`
	Page         catalog.Page                  `json:"page"`
	Filter       catalog.Filter                `json:"filter"`
	Sort         catalog.Sort                  `json:"sort"`
	Categories   []database.Category           `json:"categories"`
	Difficulties []database.Difficulty         `json:"difficulties"`
	Dietary      []database.DietaryRestriction `json:"dietary_restrictions"`
	Sorts        []catalog.Sort                `json:"sorts"`
	// Params is the current query, used to build page links.
	Params url.Values `json:"-"`
}

type MyRecipesResponse struct {
	Recipes []database.RecipeCard `json:"recipes"`
	Page    catalog.Page          `json:"page"`
	Params  url.Values            `json:"-"`
}

type DetailResponse struct {
	Recipe       database.Recipe             `json:"recipe"`
	Author       database.User               `json:"author"`
	Category     *database.Category          `json:"category"`
	Ingredients  []database.Ingredient       `json:"ingredients"`
	Instructions []database.Instruction      `json:"instructions"`
	Reviews      []database.ReviewWithAuthor `json:"reviews"`
	Rating       catalog.RatingSummary       `json:"rating"`
	IsFavorite   bool                        `json:"is_favorite"`
	IsAuthor     bool                        `json:"is_author"`
	// Review holds the viewer's own review when they left one.
	Review  recipe.ReviewForm `json:"review"`
	Ratings []int             `json:"-"`
}

type RecipeFormResponse struct {
	// Recipe is the recipe being edited, nil when adding one.
	Recipe       *database.Recipe              `json:"recipe"`
	Form         recipe.Form                   `json:"form"`
	Categories   []database.Category           `json:"categories"`
	Difficulties []database.Difficulty         `json:"difficulties"`
	Dietary      []database.DietaryRestriction `json:"dietary_restrictions"`
}

type DeleteResponse struct {
	Recipe database.Recipe `json:"recipe"`
}
