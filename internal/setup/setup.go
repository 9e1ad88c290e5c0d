// Package setup is responsible for setting up components.
package setup

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matt-dz/recipebox/internal/config"
	"github.com/matt-dz/recipebox/internal/database"
	"github.com/matt-dz/recipebox/internal/filestore"
)

// DefaultCategory is a category created on first start.
type DefaultCategory struct {
	Name string
	Slug string
}

var DefaultCategories = []DefaultCategory{
	{Name: "Breakfast", Slug: "breakfast"},
	{Name: "Lunch", Slug: "lunch"},
	{Name: "Dinner", Slug: "dinner"},
	{Name: "Dessert", Slug: "dessert"},
	{Name: "Appetizer", Slug: "appetizer"},
	{Name: "Snack", Slug: "snack"},
	{Name: "Beverage", Slug: "beverage"},
	{Name: "Salad", Slug: "salad"},
	{Name: "Soup", Slug: "soup"},
	{Name: "Vegetarian", Slug: "vegetarian"},
	{Name: "Vegan", Slug: "vegan"},
	{Name: "Gluten-Free", Slug: "gluten-free"},
}

// Database connects to Postgres and applies the schema when it is missing.
func Database(ctx context.Context, conf config.Config) (*database.Database, error) {
	pool, err := pgxpool.New(ctx, conf.Database.URL())
	if err != nil {
		return nil, fmt.Errorf("creating database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := database.NewDatabase(pool)
	if err := database.EnsureSchema(db, ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return db, nil
}

// Images returns the S3 store when a bucket is configured, otherwise the
// local volume.
func Images(ctx context.Context, conf config.Config) (filestore.Store, error) {
	if conf.Images.S3.Enabled() {
		s3, err := filestore.NewS3(conf.Images.S3)
		if err != nil {
			return nil, err
		}
		if err := s3.EnsureBucket(ctx, conf.Images.S3.Region); err != nil {
			return nil, err
		}
		return s3, nil
	}

	volume, err := filepath.Abs(conf.Images.Volume)
	if err != nil {
		return nil, fmt.Errorf("resolving images volume: %w", err)
	}
	return filestore.NewLocal(volume, conf.Images.URLPrefix), nil
}

// Categories seeds DefaultCategories when no category exists yet.
func Categories(ctx context.Context, q database.Querier, logger *slog.Logger) error {
	count, err := q.CountCategories(ctx)
	if err != nil {
		return fmt.Errorf("counting categories: %w", err)
	}
	if count > 0 {
		logger.DebugContext(ctx, "categories already exist, skipping seed", slog.Int64("count", count))
		return nil
	}

	for _, c := range DefaultCategories {
		if _, err := q.CreateCategory(ctx, database.CreateCategoryParams{Name: c.Name, Slug: c.Slug}); err != nil {
			return fmt.Errorf("creating category %q: %w", c.Slug, err)
		}
	}
	logger.InfoContext(ctx, "seeded default categories", slog.Int("count", len(DefaultCategories)))
	return nil
}
