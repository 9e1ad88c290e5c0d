//go:build integration

// Package dbtest starts a disposable Postgres for integration tests.
package dbtest

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/matt-dz/recipebox/internal/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const image = "postgres:17-alpine"

// SkipIfNoDocker skips the test when no Docker daemon is reachable.
func SkipIfNoDocker(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if exec.CommandContext(ctx, "docker", "info").Run() != nil {
		t.Skip("Skipping test: Docker not available")
	}
}

// New starts Postgres, applies the schema and returns a connected database.
// The container is terminated when the test ends.
func New(t *testing.T) *database.Database {
	t.Helper()
	SkipIfNoDocker(t)

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, image,
		postgres.WithDatabase("recipebox"),
		postgres.WithUsername("recipebox"),
		postgres.WithPassword("recipebox"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Fatalf("starting postgres: %v", err)
	}

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("building connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connecting to postgres: %v", err)
	}
	t.Cleanup(pool.Close)

	db := database.NewDatabase(pool)
	if err := database.EnsureSchema(db, ctx); err != nil {
		t.Fatalf("applying schema: %v", err)
	}
	return db
}

// Fixtures creates rows with sensible defaults for tests.
type Fixtures struct {
	t  *testing.T
	db database.Querier
}

func NewFixtures(t *testing.T, db database.Querier) *Fixtures {
	return &Fixtures{t: t, db: db}
}

// User creates a user and its profile.
func (f *Fixtures) User(username string) database.User {
	f.t.Helper()
	ctx := context.Background()

	u, err := f.db.CreateUser(ctx, database.CreateUserParams{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	})
	if err != nil {
		f.t.Fatalf("creating user %q: %v", username, err)
	}
	if _, err := f.db.CreateProfile(ctx, u.ID); err != nil {
		f.t.Fatalf("creating profile for %q: %v", username, err)
	}
	return u
}

func (f *Fixtures) Category(name, slug string) database.Category {
	f.t.Helper()
	c, err := f.db.CreateCategory(context.Background(), database.CreateCategoryParams{Name: name, Slug: slug})
	if err != nil {
		f.t.Fatalf("creating category %q: %v", slug, err)
	}
	return c
}

// Recipe creates a recipe. Zero fields of arg get defaults derived from
// the title.
func (f *Fixtures) Recipe(arg database.CreateRecipeParams) database.Recipe {
	f.t.Helper()
	if arg.Slug == "" {
		arg.Slug = arg.Title
	}
	if arg.Description == "" {
		arg.Description = arg.Title
	}
	if arg.Servings == 0 {
		arg.Servings = 4
	}
	if arg.Difficulty == "" {
		arg.Difficulty = database.DifficultyEasy
	}
	if arg.DietaryRestriction == "" {
		arg.DietaryRestriction = database.DietaryNone
	}
	r, err := f.db.CreateRecipe(context.Background(), arg)
	if err != nil {
		f.t.Fatalf("creating recipe %q: %v", arg.Title, err)
	}
	return r
}

func (f *Fixtures) Review(recipeID, userID int64, rating int32) database.Review {
	f.t.Helper()
	r, err := f.db.UpsertReview(context.Background(), database.UpsertReviewParams{
		RecipeID: recipeID,
		UserID:   userID,
		Rating:   rating,
	})
	if err != nil {
		f.t.Fatalf("reviewing recipe %d: %v", recipeID, err)
	}
	return r
}
