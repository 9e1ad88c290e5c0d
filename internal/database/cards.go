package database

import (
	"context"
)

// RecipeCardFrom joins everything a card needs. Statements built on it must
// group by RecipeCardGroupBy.
const RecipeCardFrom = `recipes r
JOIN users u ON u.id = r.author_id
LEFT JOIN categories c ON c.id = r.category_id
LEFT JOIN reviews rv ON rv.recipe_id = r.id`

const RecipeCardGroupBy = `r.id, u.id, c.id`

// AverageRatingExpr is the unrounded mean rating, NULL without reviews.
const AverageRatingExpr = `AVG(rv.rating)`

// ReviewCountExpr counts reviews, zero without reviews.
const ReviewCountExpr = `COUNT(rv.id)`

// RecipeCardColumns is the select list scanned into RecipeCard.
const RecipeCardColumns = `r.id, r.title, r.slug, r.description, r.author_id, u.username,
    r.category_id, c.name, c.slug, r.prep_time, r.cook_time, r.servings,
    r.difficulty, r.dietary_restriction, r.image, r.tags, r.view_count,
    r.created_at, r.updated_at,
    COALESCE(ROUND(` + AverageRatingExpr + `::numeric, 1), 0)::float8,
    ` + ReviewCountExpr

// SelectRecipeCards runs a statement selecting RecipeCardColumns.
func (q *Queries) SelectRecipeCards(ctx context.Context, query string, args []any) ([]RecipeCard, error) {
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []RecipeCard{}
	for rows.Next() {
		var i RecipeCard
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Slug,
			&i.Description,
			&i.AuthorID,
			&i.AuthorUsername,
			&i.CategoryID,
			&i.CategoryName,
			&i.CategorySlug,
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
			&i.AverageRating,
			&i.ReviewCount,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// CountRecipeCards runs a statement returning a single count.
func (q *Queries) CountRecipeCards(ctx context.Context, query string, args []any) (int64, error) {
	row := q.db.QueryRow(ctx, query, args...)
	var count int64
	err := row.Scan(&count)
	return count, err
}
