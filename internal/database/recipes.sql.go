package database

import (
	"context"
)

const recipeColumns = `id, title, slug, author_id, description, category_id, prep_time, cook_time,
    servings, difficulty, dietary_restriction, image, tags, view_count, created_at, updated_at`

func scanRecipe(row interface{ Scan(...any) error }) (Recipe, error) {
	var i Recipe
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Slug,
		&i.AuthorID,
		&i.Description,
		&i.CategoryID,
		&i.PrepTime,
		&i.CookTime,
		&i.Servings,
		&i.Difficulty,
		&i.DietaryRestriction,
		&i.Image,
		&i.Tags,
		&i.ViewCount,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createRecipe = `
INSERT INTO recipes (
    title, slug, author_id, description, category_id, prep_time, cook_time,
    servings, difficulty, dietary_restriction, image, tags
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + recipeColumns

type CreateRecipeParams struct {
	Title              string
	Slug               string
	AuthorID           int64
	Description        string
	CategoryID         *int64
	PrepTime           int32
	CookTime           int32
	Servings           int32
	Difficulty         Difficulty
	DietaryRestriction DietaryRestriction
	Image              *string
	Tags               string
}

func (q *Queries) CreateRecipe(ctx context.Context, arg CreateRecipeParams) (Recipe, error) {
	row := q.db.QueryRow(ctx, createRecipe,
		arg.Title,
		arg.Slug,
		arg.AuthorID,
		arg.Description,
		arg.CategoryID,
		arg.PrepTime,
		arg.CookTime,
		arg.Servings,
		arg.Difficulty,
		arg.DietaryRestriction,
		arg.Image,
		arg.Tags,
	)
	return scanRecipe(row)
}

const updateRecipe = `
UPDATE recipes
SET title = $2, slug = $3, description = $4, category_id = $5, prep_time = $6,
    cook_time = $7, servings = $8, difficulty = $9, dietary_restriction = $10,
    image = $11, tags = $12, updated_at = now()
WHERE id = $1
RETURNING ` + recipeColumns

type UpdateRecipeParams struct {
	ID                 int64
	Title              string
	Slug               string
	Description        string
	CategoryID         *int64
	PrepTime           int32
	CookTime           int32
	Servings           int32
	Difficulty         Difficulty
	DietaryRestriction DietaryRestriction
	Image              *string
	Tags               string
}

func (q *Queries) UpdateRecipe(ctx context.Context, arg UpdateRecipeParams) (Recipe, error) {
	row := q.db.QueryRow(ctx, updateRecipe,
		arg.ID,
		arg.Title,
		arg.Slug,
		arg.Description,
		arg.CategoryID,
		arg.PrepTime,
		arg.CookTime,
		arg.Servings,
		arg.Difficulty,
		arg.DietaryRestriction,
		arg.Image,
		arg.Tags,
	)
	return scanRecipe(row)
}

const deleteRecipe = `
DELETE FROM recipes WHERE id = $1
`

func (q *Queries) DeleteRecipe(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteRecipe, id)
	return err
}

const getRecipeBySlug = `
SELECT ` + recipeColumns + `
FROM recipes
WHERE slug = $1
`

func (q *Queries) GetRecipeBySlug(ctx context.Context, slug string) (Recipe, error) {
	row := q.db.QueryRow(ctx, getRecipeBySlug, slug)
	return scanRecipe(row)
}

const recipeSlugExists = `
SELECT EXISTS (
    SELECT 1 FROM recipes WHERE slug = $1 AND id <> $2
)
`

type RecipeSlugExistsParams struct {
	Slug string
	// ExcludeID skips one recipe, zero skips none.
	ExcludeID int64
}

func (q *Queries) RecipeSlugExists(ctx context.Context, arg RecipeSlugExistsParams) (bool, error) {
	row := q.db.QueryRow(ctx, recipeSlugExists, arg.Slug, arg.ExcludeID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const incrementRecipeViewCount = `
UPDATE recipes
SET view_count = view_count + 1
WHERE id = $1
RETURNING view_count
`

// IncrementRecipeViewCount bumps the counter in a single statement so
// concurrent readers never lose an increment.
func (q *Queries) IncrementRecipeViewCount(ctx context.Context, id int64) (int32, error) {
	row := q.db.QueryRow(ctx, incrementRecipeViewCount, id)
	var viewCount int32
	err := row.Scan(&viewCount)
	return viewCount, err
}
