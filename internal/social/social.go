// Package social holds favorites, follows and the profile page built on
// them.
package social

import (
	"context"
	"fmt"

	"github.com/matt-dz/recipebox/internal/auth"
	"github.com/matt-dz/recipebox/internal/catalog"
	"github.com/matt-dz/recipebox/internal/database"
)

// ProfileListSize caps the authored and favorite recipes shown on a profile.
const ProfileListSize = 100

// ToggleFavorite adds the recipe to the viewer's favorites or removes it
// when already present. It reports whether the recipe is now a favorite.
func ToggleFavorite(ctx context.Context, q database.Querier, viewer auth.Viewer, recipeID int64) (bool, error) {
	params := database.FavoriteParams{UserID: viewer.ID, RecipeID: recipeID}
	removed, err := q.RemoveFavorite(ctx, params)
	if err != nil {
		return false, fmt.Errorf("removing favorite: %w", err)
	}
	if removed > 0 {
		return false, nil
	}
	if err := q.AddFavorite(ctx, params); err != nil {
		return false, fmt.Errorf("adding favorite: %w", err)
	}
	return true, nil
}

// FavoriteMessage is the flash shown after ToggleFavorite.
func FavoriteMessage(title string, favorited bool) string {
	if favorited {
		return title + " added to favorites!"
	}
	return title + " removed from favorites."
}

// FollowResult is the outcome of ToggleFollow.
type FollowResult int

const (
	// FollowUnchanged means the viewer tried to follow themselves.
	FollowUnchanged FollowResult = iota
	Followed
	Unfollowed
)

// ToggleFollow makes the viewer follow target, or unfollow when already
// following. Following yourself is a no-op.
func ToggleFollow(ctx context.Context, q database.Querier, viewer auth.Viewer, targetID int64) (FollowResult, error) {
	if viewer.ID == targetID {
		return FollowUnchanged, nil
	}
	params := database.FollowParams{FollowerID: viewer.ID, FolloweeID: targetID}
	removed, err := q.RemoveFollow(ctx, params)
	if err != nil {
		return FollowUnchanged, fmt.Errorf("removing follow: %w", err)
	}
	if removed > 0 {
		return Unfollowed, nil
	}
	if err := q.AddFollow(ctx, params); err != nil {
		return FollowUnchanged, fmt.Errorf("adding follow: %w", err)
	}
	return Followed, nil
}

// FollowMessage is the flash shown after ToggleFollow, empty when nothing
// changed.
func FollowMessage(username string, r FollowResult) string {
	switch r {
	case Followed:
		return "You are now following " + username + "!"
	case Unfollowed:
		return "You unfollowed " + username + "."
	}
	return ""
}

// ProfilePage is everything shown on a user's profile page.
type ProfilePage struct {
	User      database.User         `json:"user"`
	Profile   database.Profile      `json:"profile"`
	Recipes   []database.RecipeCard `json:"recipes"`
	Favorites []database.RecipeCard `json:"favorites"`
	Followers int64                 `json:"followers"`
	Following int64                 `json:"following"`
	// IsFollowing reports whether the viewer follows this user.
	IsFollowing bool `json:"is_following"`
	// Own is set when the viewer is looking at their own profile.
	Own bool `json:"own"`
}

// LoadProfile gathers the profile page for user as seen by viewer.
func LoadProfile(ctx context.Context, q database.Querier, user database.User, viewer auth.Viewer) (ProfilePage, error) {
	p := ProfilePage{User: user, Own: user.ID == viewer.ID}

	var err error
	if p.Profile, err = q.GetProfile(ctx, user.ID); err != nil {
		return ProfilePage{}, fmt.Errorf("getting profile: %w", err)
	}
	p.Recipes, err = catalog.Top(ctx, q, catalog.Query{Sort: catalog.SortNewest, AuthorIDs: []int64{user.ID}}, ProfileListSize)
	if err != nil {
		return ProfilePage{}, fmt.Errorf("listing authored recipes: %w", err)
	}
	p.Favorites, err = catalog.Top(ctx, q, catalog.Query{Sort: catalog.SortNewest, FavoritedBy: user.ID}, ProfileListSize)
	if err != nil {
		return ProfilePage{}, fmt.Errorf("listing favorites: %w", err)
	}
	if p.Followers, err = q.CountFollowers(ctx, user.ID); err != nil {
		return ProfilePage{}, fmt.Errorf("counting followers: %w", err)
	}
	if p.Following, err = q.CountFollowing(ctx, user.ID); err != nil {
		return ProfilePage{}, fmt.Errorf("counting following: %w", err)
	}
	if !p.Own {
		p.IsFollowing, err = q.IsFollowing(ctx, database.FollowParams{FollowerID: viewer.ID, FolloweeID: user.ID})
		if err != nil {
			return ProfilePage{}, fmt.Errorf("checking follow: %w", err)
		}
	}
	return p, nil
}
