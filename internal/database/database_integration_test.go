//go:build integration

package database_test

import (
	"context"
	"sync"
	"testing"

	"github.com/matt-dz/recipebox/internal/database"
	"github.com/matt-dz/recipebox/internal/database/dbtest"
)

func TestEnsureSchema_Idempotent(t *testing.T) {
	db := dbtest.New(t)
	if err := database.EnsureSchema(db, context.Background()); err != nil {
		t.Fatalf("second EnsureSchema() error = %v", err)
	}
}

func TestUpsertReview_KeepsOneRowPerUser(t *testing.T) {
	db := dbtest.New(t)
	fx := dbtest.NewFixtures(t, db)
	ctx := context.Background()

	author := fx.User("author")
	critic := fx.User("critic")
	recipe := fx.Recipe(database.CreateRecipeParams{Title: "stew", AuthorID: author.ID})

	first, err := db.UpsertReview(ctx, database.UpsertReviewParams{RecipeID: recipe.ID, UserID: critic.ID, Rating: 2, Comment: "meh"})
	if err != nil {
		t.Fatalf("first review: %v", err)
	}
	second, err := db.UpsertReview(ctx, database.UpsertReviewParams{RecipeID: recipe.ID, UserID: critic.ID, Rating: 5, Comment: "grew on me"})
	if err != nil {
		t.Fatalf("second review: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("upsert created a new row: %d then %d", first.ID, second.ID)
	}

	reviews, err := db.ListRecipeReviews(ctx, recipe.ID)
	if err != nil {
		t.Fatalf("ListRecipeReviews() error = %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("got %d reviews, want 1", len(reviews))
	}
	if reviews[0].Rating != 5 || reviews[0].Comment != "grew on me" || reviews[0].Username != "critic" {
		t.Errorf("review = %+v, want the latest values", reviews[0])
	}
}

func TestIncrementRecipeViewCount_Concurrent(t *testing.T) {
	db := dbtest.New(t)
	fx := dbtest.NewFixtures(t, db)
	ctx := context.Background()

	recipe := fx.Recipe(database.CreateRecipeParams{Title: "soup", AuthorID: fx.User("cook").ID})

	got, err := db.IncrementRecipeViewCount(ctx, recipe.ID)
	if err != nil {
		t.Fatalf("IncrementRecipeViewCount() error = %v", err)
	}
	if got != 1 {
		t.Fatalf("view count after one read = %d, want 1", got)
	}

	const readers = 20
	var wg sync.WaitGroup
	for range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := db.IncrementRecipeViewCount(ctx, recipe.ID); err != nil {
				t.Errorf("IncrementRecipeViewCount() error = %v", err)
			}
		}()
	}
	wg.Wait()

	r, err := db.GetRecipeBySlug(ctx, recipe.Slug)
	if err != nil {
		t.Fatalf("GetRecipeBySlug() error = %v", err)
	}
	if r.ViewCount != readers+1 {
		t.Errorf("view count = %d, want %d", r.ViewCount, readers+1)
	}
}

func TestDeleteRecipe_Cascades(t *testing.T) {
	db := dbtest.New(t)
	fx := dbtest.NewFixtures(t, db)
	ctx := context.Background()

	cook := fx.User("cook")
	recipe := fx.Recipe(database.CreateRecipeParams{Title: "pie", AuthorID: cook.ID})
	if _, err := db.CreateIngredient(ctx, database.CreateIngredientParams{RecipeID: recipe.ID, Name: "flour", Quantity: "1 cup"}); err != nil {
		t.Fatalf("CreateIngredient() error = %v", err)
	}
	fx.Review(recipe.ID, cook.ID, 4)
	if err := db.AddFavorite(ctx, database.FavoriteParams{UserID: cook.ID, RecipeID: recipe.ID}); err != nil {
		t.Fatalf("AddFavorite() error = %v", err)
	}

	if err := db.DeleteRecipe(ctx, recipe.ID); err != nil {
		t.Fatalf("DeleteRecipe() error = %v", err)
	}

	ingredients, _ := db.ListIngredients(ctx, recipe.ID)
	reviews, _ := db.ListRecipeReviews(ctx, recipe.ID)
	favorites, _ := db.ListFavoriteRecipeIDs(ctx, cook.ID)
	if len(ingredients)+len(reviews)+len(favorites) != 0 {
		t.Errorf("rows survived delete: %d ingredients, %d reviews, %d favorites",
			len(ingredients), len(reviews), len(favorites))
	}
}

func TestDeleteCategory_NullsRecipes(t *testing.T) {
	db := dbtest.New(t)
	fx := dbtest.NewFixtures(t, db)
	ctx := context.Background()

	cat := fx.Category("Soup", "soup")
	recipe := fx.Recipe(database.CreateRecipeParams{Title: "broth", AuthorID: fx.User("cook").ID, CategoryID: &cat.ID})

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if _, err := tx.Exec(ctx, "DELETE FROM categories WHERE id = $1", cat.ID); err != nil {
		t.Fatalf("deleting category: %v", err)
	}
	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	r, err := db.GetRecipeBySlug(ctx, recipe.Slug)
	if err != nil {
		t.Fatalf("recipe deleted with its category: %v", err)
	}
	if r.CategoryID != nil {
		t.Errorf("category_id = %d, want NULL", *r.CategoryID)
	}
}

func TestCreateUser_DuplicateEmailIgnoresCase(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()

	if _, err := db.CreateUser(ctx, database.CreateUserParams{Username: "a", Email: "Cook@Example.com", PasswordHash: "x"}); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	_, err := db.CreateUser(ctx, database.CreateUserParams{Username: "b", Email: "cook@example.com", PasswordHash: "x"})
	if !database.IsUniqueViolation(err, "users_email_key") {
		t.Errorf("CreateUser() error = %v, want unique violation on users_email_key", err)
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(q database.Querier) error {
		u, err := q.CreateUser(ctx, database.CreateUserParams{Username: "ghost", Email: "ghost@example.com", PasswordHash: "x"})
		if err != nil {
			return err
		}
		_, err = q.CreateProfile(ctx, u.ID+1000)
		return err
	})
	if err == nil {
		t.Fatal("WithTx() succeeded with a dangling profile")
	}

	if _, err := db.GetUserByUsername(ctx, "ghost"); !database.IsNotFound(err) {
		t.Errorf("GetUserByUsername() error = %v, want not found after rollback", err)
	}
}

func TestToggleQueries_Follows(t *testing.T) {
	db := dbtest.New(t)
	fx := dbtest.NewFixtures(t, db)
	ctx := context.Background()

	a, b := fx.User("a"), fx.User("b")
	arg := database.FollowParams{FollowerID: a.ID, FolloweeID: b.ID}

	if err := db.AddFollow(ctx, arg); err != nil {
		t.Fatalf("AddFollow() error = %v", err)
	}
	if err := db.AddFollow(ctx, arg); err != nil {
		t.Fatalf("repeated AddFollow() error = %v", err)
	}
	followers, _ := db.CountFollowers(ctx, b.ID)
	following, _ := db.CountFollowing(ctx, b.ID)
	if followers != 1 || following != 0 {
		t.Errorf("b followers/following = %d/%d, want 1/0", followers, following)
	}

	n, err := db.RemoveFollow(ctx, arg)
	if err != nil || n != 1 {
		t.Errorf("RemoveFollow() = %d, %v; want 1, nil", n, err)
	}
}
