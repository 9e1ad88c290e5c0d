package database

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=querier.go -destination=mock_querier.go -package=database

// Querier is the set of statements the application runs against Postgres.
type Querier interface {
	CheckUsersTableExists(ctx context.Context) (bool, error)

	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	GetUserByID(ctx context.Context, id int64) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	UpdateUser(ctx context.Context, arg UpdateUserParams) (User, error)
	CreateProfile(ctx context.Context, userID int64) (Profile, error)
	GetProfile(ctx context.Context, userID int64) (Profile, error)
	UpdateProfile(ctx context.Context, arg UpdateProfileParams) (Profile, error)

	CountCategories(ctx context.Context) (int64, error)
	CreateCategory(ctx context.Context, arg CreateCategoryParams) (Category, error)
	GetCategory(ctx context.Context, id int64) (Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	ListPopularCategories(ctx context.Context, limit int32) ([]CategoryCount, error)

	CreateRecipe(ctx context.Context, arg CreateRecipeParams) (Recipe, error)
	UpdateRecipe(ctx context.Context, arg UpdateRecipeParams) (Recipe, error)
	DeleteRecipe(ctx context.Context, id int64) error
	GetRecipeBySlug(ctx context.Context, slug string) (Recipe, error)
	RecipeSlugExists(ctx context.Context, arg RecipeSlugExistsParams) (bool, error)
	IncrementRecipeViewCount(ctx context.Context, id int64) (int32, error)
	SelectRecipeCards(ctx context.Context, query string, args []any) ([]RecipeCard, error)
	CountRecipeCards(ctx context.Context, query string, args []any) (int64, error)

	ListIngredients(ctx context.Context, recipeID int64) ([]Ingredient, error)
	CreateIngredient(ctx context.Context, arg CreateIngredientParams) (Ingredient, error)
	DeleteIngredients(ctx context.Context, recipeID int64) error
	ListInstructions(ctx context.Context, recipeID int64) ([]Instruction, error)
	CreateInstruction(ctx context.Context, arg CreateInstructionParams) (Instruction, error)
	DeleteInstructions(ctx context.Context, recipeID int64) error

	UpsertReview(ctx context.Context, arg UpsertReviewParams) (Review, error)
	ListRecipeReviews(ctx context.Context, recipeID int64) ([]ReviewWithAuthor, error)

	IsFavorite(ctx context.Context, arg FavoriteParams) (bool, error)
	AddFavorite(ctx context.Context, arg FavoriteParams) error
	RemoveFavorite(ctx context.Context, arg FavoriteParams) (int64, error)
	ListFavoriteRecipeIDs(ctx context.Context, userID int64) ([]int64, error)
	ListFavoriteCategoryIDs(ctx context.Context, userID int64) ([]int64, error)

	IsFollowing(ctx context.Context, arg FollowParams) (bool, error)
	AddFollow(ctx context.Context, arg FollowParams) error
	RemoveFollow(ctx context.Context, arg FollowParams) (int64, error)
	ListFolloweeIDs(ctx context.Context, followerID int64) ([]int64, error)
	CountFollowers(ctx context.Context, userID int64) (int64, error)
	CountFollowing(ctx context.Context, userID int64) (int64, error)
}

var _ Querier = (*Queries)(nil)
