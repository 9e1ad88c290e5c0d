// Package recipes contains handlers for the catalog and recipe pages.
package recipes

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	apiError "github.com/matt-dz/recipebox/internal/api/error"
	"github.com/matt-dz/recipebox/internal/api/respond"
	"github.com/matt-dz/recipebox/internal/auth"
	"github.com/matt-dz/recipebox/internal/catalog"
	"github.com/matt-dz/recipebox/internal/database"
	"github.com/matt-dz/recipebox/internal/env"
	"github.com/matt-dz/recipebox/internal/form"
	"github.com/matt-dz/recipebox/internal/recipe"
	"github.com/matt-dz/recipebox/internal/render"
	"github.com/matt-dz/recipebox/internal/social"
)

const (
	catalogPath       = "/recipes/"
	recipeNotFoundMsg = "Recipe not found"
)

var ratings = []int{1, 2, 3, 4, 5}

func DetailPath(slug string) string {
	return "/recipe/" + slug + "/"
}

// HandleDashboard renders the landing page.
func HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	dashboard, err := catalog.BuildDashboard(ctx, env.Database, auth.FromCtx(ctx), time.Now())
	if err != nil {
		respond.Internal(w, r, "failed to build dashboard", err)
		return
	}
	respond.Page(w, r, http.StatusOK, "dashboard", "", dashboard, nil)
}

// HandleCatalog renders one page of the filtered, sorted catalog.
func HandleCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	params := r.URL.Query()

	q := catalog.Query{
		Filter: catalog.ParseFilter(params),
		Sort:   catalog.ParseSort(params.Get("sort")),
	}
	env.Logger.DebugContext(ctx, "searching catalog", slog.Any("filter", q.Filter), slog.String("sort", string(q.Sort)))
	result, err := catalog.Search(ctx, env.Database, q, catalog.ParsePage(params.Get("page")))
	if err != nil {
		respond.Internal(w, r, "failed to search catalog", err)
		return
	}
	categories, err := env.Database.ListCategories(ctx)
	if err != nil {
		respond.Internal(w, r, "failed to list categories", err)
		return
	}
	env.Metrics.CatalogSearched()

	links := q.Filter.Values()
	links.Set("sort", string(q.Sort))
	respond.Page(w, r, http.StatusOK, "catalog", "Recipes", CatalogResponse{
		Recipes:      result.Recipes,
		Page:         result.Page,
		Filter:       q.Filter,
		Sort:         q.Sort,
		Categories:   categories,
		Difficulties: database.Difficulties(),
		Dietary:      database.DietaryRestrictions(),
		Sorts:        catalog.Sorts(),
		Params:       links,
	}, nil)
}

// HandleMyRecipes lists the viewer's recipes, newest first.
func HandleMyRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := auth.FromCtx(ctx)

	q := catalog.Query{Sort: catalog.SortNewest, AuthorIDs: []int64{viewer.ID}}
	result, err := catalog.Search(ctx, env.Database, q, catalog.ParsePage(r.URL.Query().Get("page")))
	if err != nil {
		respond.Internal(w, r, "failed to list viewer recipes", err)
		return
	}
	respond.Page(w, r, http.StatusOK, "my_recipes", "My recipes", MyRecipesResponse{
		Recipes: result.Recipes,
		Page:    result.Page,
		Params:  url.Values{},
	}, nil)
}

// recipeFromURL loads the recipe named by the slug parameter, rendering a
// 404 when there is none. ok is false when a response was written.
func recipeFromURL(w http.ResponseWriter, r *http.Request) (rec database.Recipe, ok bool) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	rec, err := env.Database.GetRecipeBySlug(ctx, chi.URLParam(r, "slug"))
	if database.IsNotFound(err) {
		respond.Error(w, r, apiError.RecipeNotFound, recipeNotFoundMsg)
		return database.Recipe{}, false
	} else if err != nil {
		respond.Internal(w, r, "failed to get recipe", err)
		return database.Recipe{}, false
	}
	return rec, true
}

// HandleDetail renders a recipe and counts the view.
func HandleDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := auth.FromCtx(ctx)

	rec, ok := recipeFromURL(w, r)
	if !ok {
		return
	}

	views, err := env.Database.IncrementRecipeViewCount(ctx, rec.ID)
	if err != nil {
		respond.Internal(w, r, "failed to count recipe view", err)
		return
	}
	rec.ViewCount = views
	env.Metrics.RecipeViewed()

	resp := DetailResponse{Recipe: rec, Ratings: ratings}
	if resp.Author, err = env.Database.GetUserByID(ctx, rec.AuthorID); err != nil {
		respond.Internal(w, r, "failed to get recipe author", err)
		return
	}
	if rec.CategoryID != nil {
		category, err := env.Database.GetCategory(ctx, *rec.CategoryID)
		if err != nil && !database.IsNotFound(err) {
			respond.Internal(w, r, "failed to get recipe category", err)
			return
		}
		if err == nil {
			resp.Category = &category
		}
	}
	if resp.Ingredients, err = env.Database.ListIngredients(ctx, rec.ID); err != nil {
		respond.Internal(w, r, "failed to list ingredients", err)
		return
	}
	if resp.Instructions, err = env.Database.ListInstructions(ctx, rec.ID); err != nil {
		respond.Internal(w, r, "failed to list instructions", err)
		return
	}
	if resp.Reviews, err = env.Database.ListRecipeReviews(ctx, rec.ID); err != nil {
		respond.Internal(w, r, "failed to list reviews", err)
		return
	}
	resp.Rating = catalog.Summarize(resp.Reviews)

	resp.Review = recipe.ReviewForm{Rating: 5}
	if viewer != nil {
		resp.IsAuthor = viewer.ID == rec.AuthorID
		resp.IsFavorite, err = env.Database.IsFavorite(ctx, database.FavoriteParams{UserID: viewer.ID, RecipeID: rec.ID})
		if err != nil {
			respond.Internal(w, r, "failed to check favorite", err)
			return
		}
		for _, review := range resp.Reviews {
			if review.UserID == viewer.ID {
				resp.Review = recipe.ReviewForm{Rating: int(review.Rating), Comment: review.Comment}
			}
		}
	}

	respond.Page(w, r, http.StatusOK, "recipe_detail", rec.Title, resp, nil)
}

// HandleReview stores the viewer's review, replacing an earlier one.
func HandleReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := auth.FromCtx(ctx)

	rec, ok := recipeFromURL(w, r)
	if !ok {
		return
	}
	if err := form.ParseRequest(w, r); err != nil {
		respond.Error(w, r, apiError.BadRequest, "Invalid form")
		return
	}

	review, errs := recipe.ParseReview(r.PostForm)
	if errs.Any() {
		respond.RedirectWithFlash(w, r, DetailPath(rec.Slug), render.FlashError,
			"Your review could not be saved: choose a rating from 1 to 5.")
		return
	}
	if _, err := recipe.SubmitReview(ctx, env.Database, *viewer, rec.ID, review); err != nil {
		respond.Internal(w, r, "failed to submit review", err)
		return
	}
	env.Metrics.ReviewSubmitted()
	respond.RedirectWithFlash(w, r, DetailPath(rec.Slug), render.FlashSuccess, "Your review has been added!")
}

// HandleFavorite toggles the recipe in the viewer's favorites.
func HandleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := auth.FromCtx(ctx)

	rec, ok := recipeFromURL(w, r)
	if !ok {
		return
	}
	favorited, err := social.ToggleFavorite(ctx, env.Database, *viewer, rec.ID)
	if err != nil {
		respond.Internal(w, r, "failed to toggle favorite", err)
		return
	}
	respond.RedirectWithFlash(w, r, DetailPath(rec.Slug), render.FlashSuccess, social.FavoriteMessage(rec.Title, favorited))
}

func renderForm(w http.ResponseWriter, r *http.Request, status int, existing *database.Recipe, f recipe.Form, errs form.Errors) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	categories, err := env.Database.ListCategories(ctx)
	if err != nil {
		respond.Internal(w, r, "failed to list categories", err)
		return
	}
	title := "Add a recipe"
	if existing != nil {
		title = "Edit " + existing.Title
	}
	respond.Page(w, r, status, "recipe_form", title, RecipeFormResponse{
		Recipe:       existing,
		Form:         f,
		Categories:   categories,
		Difficulties: database.Difficulties(),
		Dietary:      database.DietaryRestrictions(),
	}, errs)
}

// HandleNewRecipe renders an empty recipe form.
func HandleNewRecipe(w http.ResponseWriter, r *http.Request) {
	renderForm(w, r, http.StatusOK, nil, recipe.NewForm(), nil)
}

// HandleCreateRecipe stores a new recipe with its ingredients and
// instructions.
func HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	saveRecipe(w, r, nil)
}

// ownedRecipeFromURL is recipeFromURL restricted to the viewer's recipes.
// Other viewers are sent back to the recipe with an error message.
func ownedRecipeFromURL(w http.ResponseWriter, r *http.Request, verb string) (database.Recipe, bool) {
	rec, ok := recipeFromURL(w, r)
	if !ok {
		return database.Recipe{}, false
	}
	if viewer := auth.FromCtx(r.Context()); viewer == nil || viewer.ID != rec.AuthorID {
		if render.WantsJSON(r) {
			respond.Error(w, r, apiError.RecipeNotOwned, "You can only "+verb+" your own recipes.")
		} else {
			respond.RedirectWithFlash(w, r, DetailPath(rec.Slug), render.FlashError, "You can only "+verb+" your own recipes.")
		}
		return database.Recipe{}, false
	}
	return rec, true
}

// HandleEditRecipe renders the form for one of the viewer's recipes.
func HandleEditRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	rec, ok := ownedRecipeFromURL(w, r, "edit")
	if !ok {
		return
	}
	ingredients, err := env.Database.ListIngredients(ctx, rec.ID)
	if err != nil {
		respond.Internal(w, r, "failed to list ingredients", err)
		return
	}
	instructions, err := env.Database.ListInstructions(ctx, rec.ID)
	if err != nil {
		respond.Internal(w, r, "failed to list instructions", err)
		return
	}
	renderForm(w, r, http.StatusOK, &rec, recipe.FormFromRecipe(rec, ingredients, instructions), nil)
}

// HandleUpdateRecipe saves an edited recipe, replacing its ingredients and
// instructions.
func HandleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	rec, ok := ownedRecipeFromURL(w, r, "edit")
	if !ok {
		return
	}
	saveRecipe(w, r, &rec)
}

func saveRecipe(w http.ResponseWriter, r *http.Request, existing *database.Recipe) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := auth.FromCtx(ctx)

	f, image, errs, err := readRecipeForm(w, r, env.Database)
	if errors.Is(err, form.ErrRequestTooLarge) {
		respond.Error(w, r, apiError.RequestTooLarge, "The upload is too large.")
		return
	} else if err != nil {
		respond.Internal(w, r, "failed to read recipe form", err)
		return
	}
	if errs.Any() {
		errs.Add("", "Please correct the errors below.")
		renderForm(w, r, http.StatusUnprocessableEntity, existing, f, errs)
		return
	}

	svc := recipe.NewService(env.Database, env.Images, env.Logger)
	saved, err := svc.Save(ctx, recipe.SaveParams{Viewer: *viewer, Existing: existing, Form: f, Image: image})
	if errors.Is(err, recipe.ErrSlugTaken) {
		// another recipe claimed the slug between the check and the insert
		errs.Add("title", "A recipe with a similar title was just added. Please try again.")
		renderForm(w, r, http.StatusConflict, existing, f, errs)
		return
	} else if err != nil {
		respond.Internal(w, r, "failed to save recipe", err)
		return
	}
	env.Metrics.RecipeSaved(existing == nil)

	msg := "Recipe created successfully!"
	if existing != nil {
		msg = "Recipe updated successfully!"
	}
	respond.RedirectWithFlash(w, r, DetailPath(saved.Slug), render.FlashSuccess, msg)
}

// HandleConfirmDelete asks the author to confirm the deletion.
func HandleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	rec, ok := ownedRecipeFromURL(w, r, "delete")
	if !ok {
		return
	}
	respond.Page(w, r, http.StatusOK, "recipe_delete", "Delete "+rec.Title, DeleteResponse{Recipe: rec}, nil)
}

// HandleDeleteRecipe deletes one of the viewer's recipes.
func HandleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := auth.FromCtx(ctx)

	rec, ok := ownedRecipeFromURL(w, r, "delete")
	if !ok {
		return
	}
	svc := recipe.NewService(env.Database, env.Images, env.Logger)
	if err := svc.Delete(ctx, *viewer, rec); err != nil {
		respond.Internal(w, r, "failed to delete recipe", err)
		return
	}
	respond.RedirectWithFlash(w, r, catalogPath, render.FlashSuccess, "Recipe deleted successfully!")
}
