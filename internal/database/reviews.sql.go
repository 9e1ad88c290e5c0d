package database

import (
	"context"
)

const upsertReview = `
INSERT INTO reviews (recipe_id, user_id, rating, comment)
VALUES ($1, $2, $3, $4)
ON CONFLICT (recipe_id, user_id)
DO UPDATE SET rating = EXCLUDED.rating, comment = EXCLUDED.comment
RETURNING id, recipe_id, user_id, rating, comment, created_at
`

type UpsertReviewParams struct {
	RecipeID int64
	UserID   int64
	Rating   int32
	Comment  string
}

func (q *Queries) UpsertReview(ctx context.Context, arg UpsertReviewParams) (Review, error) {
	row := q.db.QueryRow(ctx, upsertReview,
		arg.RecipeID,
		arg.UserID,
		arg.Rating,
		arg.Comment,
	)
	var i Review
	err := row.Scan(
		&i.ID,
		&i.RecipeID,
		&i.UserID,
		&i.Rating,
		&i.Comment,
		&i.CreatedAt,
	)
	return i, err
}

const listRecipeReviews = `
SELECT rv.id, rv.recipe_id, rv.user_id, rv.rating, rv.comment, rv.created_at, u.username
FROM reviews rv
JOIN users u ON u.id = rv.user_id
WHERE rv.recipe_id = $1
ORDER BY rv.created_at DESC, rv.id DESC
`

func (q *Queries) ListRecipeReviews(ctx context.Context, recipeID int64) ([]ReviewWithAuthor, error) {
	rows, err := q.db.Query(ctx, listRecipeReviews, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ReviewWithAuthor{}
	for rows.Next() {
		var i ReviewWithAuthor
		if err := rows.Scan(
			&i.ID,
			&i.RecipeID,
			&i.UserID,
			&i.Rating,
			&i.Comment,
			&i.CreatedAt,
			&i.Username,
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
