package recipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/matt-dz/recipebox/internal/auth"
	"github.com/matt-dz/recipebox/internal/database"
	"github.com/matt-dz/recipebox/internal/filestore"
	"github.com/matt-dz/recipebox/internal/form"
	"github.com/matt-dz/recipebox/internal/log"
)

const slugConstraint = "recipes_slug_key"

var (
	ErrNotOwner  = errors.New("recipe not owned by viewer")
	ErrSlugTaken = errors.New("recipe slug already taken")
)

// Service writes recipes and their images.
type Service struct {
	DB     *database.Database
	Images filestore.Store
	Logger *slog.Logger
}

func NewService(db *database.Database, images filestore.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = log.NullLogger()
	}
	return &Service{DB: db, Images: images, Logger: logger}
}

type SaveParams struct {
	Viewer auth.Viewer
	// Existing is the recipe being edited, nil when creating.
	Existing *database.Recipe
	Form     Form
	// Image replaces the recipe image when set.
	Image *form.File
}

// Save creates or updates a recipe. The recipe row, its ingredients and its
// instructions are written in one transaction; on edit the child rows are
// replaced by the submitted ones.
func (s *Service) Save(ctx context.Context, p SaveParams) (database.Recipe, error) {
	if p.Existing != nil && p.Existing.AuthorID != p.Viewer.ID {
		return database.Recipe{}, ErrNotOwner
	}

	var image *string
	if p.Existing != nil {
		image = p.Existing.Image
	}
	var uploaded string
	if p.Image != nil {
		uploaded = filestore.RecipeImageKey(p.Image.Suffix)
		if err := s.Images.Put(ctx, uploaded, p.Image.MimeType, p.Image.Data); err != nil {
			return database.Recipe{}, fmt.Errorf("storing recipe image: %w", err)
		}
		image = &uploaded
	}

	var saved database.Recipe
	err := s.DB.WithTx(ctx, func(q database.Querier) error {
		var err error
		saved, err = writeRecipe(ctx, q, p, image)
		if err != nil {
			return err
		}
		return replaceChildren(ctx, q, saved.ID, p.Form)
	})
	if err != nil {
		if uploaded != "" {
			s.deleteImage(ctx, uploaded)
		}
		if database.IsUniqueViolation(err, slugConstraint) {
			return database.Recipe{}, errors.Join(ErrSlugTaken, err)
		}
		return database.Recipe{}, err
	}

	if uploaded != "" && p.Existing != nil && p.Existing.Image != nil {
		s.deleteImage(ctx, *p.Existing.Image)
	}
	return saved, nil
}

func writeRecipe(ctx context.Context, q database.Querier, p SaveParams, image *string) (database.Recipe, error) {
	f := p.Form
	if p.Existing == nil {
		slug, err := UniqueSlug(ctx, q, f.Title, 0)
		if err != nil {
			return database.Recipe{}, err
		}
		r, err := q.CreateRecipe(ctx, database.CreateRecipeParams{
			Title:              f.Title,
			Slug:               slug,
			AuthorID:           p.Viewer.ID,
			Description:        f.Description,
			CategoryID:         f.CategoryID,
			PrepTime:           int32(f.PrepTime),
			CookTime:           int32(f.CookTime),
			Servings:           int32(f.Servings),
			Difficulty:         f.Difficulty,
			DietaryRestriction: f.DietaryRestriction,
			Image:              image,
			Tags:               f.Tags,
		})
		if err != nil {
			return database.Recipe{}, fmt.Errorf("creating recipe: %w", err)
		}
		return r, nil
	}

	slug := p.Existing.Slug
	if f.Title != p.Existing.Title {
		var err error
		slug, err = UniqueSlug(ctx, q, f.Title, p.Existing.ID)
		if err != nil {
			return database.Recipe{}, err
		}
	}
	r, err := q.UpdateRecipe(ctx, database.UpdateRecipeParams{
		ID:                 p.Existing.ID,
		Title:              f.Title,
		Slug:               slug,
		Description:        f.Description,
		CategoryID:         f.CategoryID,
		PrepTime:           int32(f.PrepTime),
		CookTime:           int32(f.CookTime),
		Servings:           int32(f.Servings),
		Difficulty:         f.Difficulty,
		DietaryRestriction: f.DietaryRestriction,
		Image:              image,
		Tags:               f.Tags,
	})
	if err != nil {
		return database.Recipe{}, fmt.Errorf("updating recipe: %w", err)
	}
	return r, nil
}

func replaceChildren(ctx context.Context, q database.Querier, recipeID int64, f Form) error {
	if err := q.DeleteIngredients(ctx, recipeID); err != nil {
		return fmt.Errorf("deleting ingredients: %w", err)
	}
	if err := q.DeleteInstructions(ctx, recipeID); err != nil {
		return fmt.Errorf("deleting instructions: %w", err)
	}
	for _, i := range f.KeptIngredients() {
		if _, err := q.CreateIngredient(ctx, database.CreateIngredientParams{
			RecipeID: recipeID,
			Name:     i.Name,
			Quantity: i.Quantity,
			Order:    int32(i.Order),
		}); err != nil {
			return fmt.Errorf("creating ingredient: %w", err)
		}
	}
	for _, i := range f.KeptInstructions() {
		if _, err := q.CreateInstruction(ctx, database.CreateInstructionParams{
			RecipeID:    recipeID,
			StepNumber:  int32(i.StepNumber),
			Description: i.Description,
		}); err != nil {
			return fmt.Errorf("creating instruction: %w", err)
		}
	}
	return nil
}

// Delete removes a recipe owned by the viewer along with its image.
func (s *Service) Delete(ctx context.Context, viewer auth.Viewer, r database.Recipe) error {
	if r.AuthorID != viewer.ID {
		return ErrNotOwner
	}
	if err := s.DB.DeleteRecipe(ctx, r.ID); err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}
	if r.Image != nil {
		s.deleteImage(ctx, *r.Image)
	}
	return nil
}

func (s *Service) deleteImage(ctx context.Context, key string) {
	if err := s.Images.Delete(ctx, key); err != nil {
		s.Logger.WarnContext(ctx, "failed to delete recipe image", slog.String("key", key), slog.Any("error", err))
	}
}
