package database

import (
	"context"
)

type FavoriteParams struct {
	UserID   int64
	RecipeID int64
}

const isFavorite = `
SELECT EXISTS (
    SELECT 1 FROM favorites WHERE user_id = $1 AND recipe_id = $2
)
`

func (q *Queries) IsFavorite(ctx context.Context, arg FavoriteParams) (bool, error) {
	row := q.db.QueryRow(ctx, isFavorite, arg.UserID, arg.RecipeID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const addFavorite = `
INSERT INTO favorites (user_id, recipe_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`

func (q *Queries) AddFavorite(ctx context.Context, arg FavoriteParams) error {
	_, err := q.db.Exec(ctx, addFavorite, arg.UserID, arg.RecipeID)
	return err
}

const removeFavorite = `
DELETE FROM favorites WHERE user_id = $1 AND recipe_id = $2
`

// RemoveFavorite returns the number of rows deleted.
func (q *Queries) RemoveFavorite(ctx context.Context, arg FavoriteParams) (int64, error) {
	tag, err := q.db.Exec(ctx, removeFavorite, arg.UserID, arg.RecipeID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listFavoriteRecipeIDs = `
SELECT recipe_id FROM favorites WHERE user_id = $1 ORDER BY created_at DESC, recipe_id
`

func (q *Queries) ListFavoriteRecipeIDs(ctx context.Context, userID int64) ([]int64, error) {
	return collectIDs(q.db.Query(ctx, listFavoriteRecipeIDs, userID))
}

const listFavoriteCategoryIDs = `
SELECT DISTINCT r.category_id
FROM favorites f
JOIN recipes r ON r.id = f.recipe_id
WHERE f.user_id = $1 AND r.category_id IS NOT NULL
ORDER BY r.category_id
`

func (q *Queries) ListFavoriteCategoryIDs(ctx context.Context, userID int64) ([]int64, error) {
	return collectIDs(q.db.Query(ctx, listFavoriteCategoryIDs, userID))
}

type FollowParams struct {
	FollowerID int64
	FolloweeID int64
}

const isFollowing = `
SELECT EXISTS (
    SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2
)
`

func (q *Queries) IsFollowing(ctx context.Context, arg FollowParams) (bool, error) {
	row := q.db.QueryRow(ctx, isFollowing, arg.FollowerID, arg.FolloweeID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const addFollow = `
INSERT INTO follows (follower_id, followee_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`

func (q *Queries) AddFollow(ctx context.Context, arg FollowParams) error {
	_, err := q.db.Exec(ctx, addFollow, arg.FollowerID, arg.FolloweeID)
	return err
}

const removeFollow = `
DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2
`

// RemoveFollow returns the number of rows deleted.
func (q *Queries) RemoveFollow(ctx context.Context, arg FollowParams) (int64, error) {
	tag, err := q.db.Exec(ctx, removeFollow, arg.FollowerID, arg.FolloweeID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listFolloweeIDs = `
SELECT followee_id FROM follows WHERE follower_id = $1 ORDER BY followee_id
`

func (q *Queries) ListFolloweeIDs(ctx context.Context, followerID int64) ([]int64, error) {
	return collectIDs(q.db.Query(ctx, listFolloweeIDs, followerID))
}

const countFollowers = `
SELECT count(*) FROM follows WHERE followee_id = $1
`

func (q *Queries) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	row := q.db.QueryRow(ctx, countFollowers, userID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countFollowing = `
SELECT count(*) FROM follows WHERE follower_id = $1
`

func (q *Queries) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	row := q.db.QueryRow(ctx, countFollowing, userID)
	var count int64
	err := row.Scan(&count)
	return count, err
}
