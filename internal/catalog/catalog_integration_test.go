//go:build integration

package catalog_test

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/matt-dz/recipebox/internal/catalog"
	"github.com/matt-dz/recipebox/internal/database"
	"github.com/matt-dz/recipebox/internal/database/dbtest"
)

func search(t *testing.T, db database.Querier, rawQuery string) catalog.Result {
	t.Helper()
	v, err := url.ParseQuery(rawQuery)
	if err != nil {
		t.Fatalf("bad query %q: %v", rawQuery, err)
	}
	q := catalog.Query{Filter: catalog.ParseFilter(v), Sort: catalog.ParseSort(v.Get("sort"))}
	res, err := catalog.Search(context.Background(), db, q, catalog.ParsePage(v.Get("page")))
	if err != nil {
		t.Fatalf("Search(%q) error = %v", rawQuery, err)
	}
	return res
}

func slugs(cards []database.RecipeCard) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Slug
	}
	return out
}

func TestCatalog_TiramisuScenario(t *testing.T) {
	db := dbtest.New(t)
	fx := dbtest.NewFixtures(t, db)

	dessert := fx.Category("Dessert", "dessert")
	soup := fx.Category("Soup", "soup")
	cook := fx.User("cook")
	fx.Recipe(database.CreateRecipeParams{
		Title: "Tiramisu", Slug: "tiramisu", AuthorID: cook.ID, CategoryID: &dessert.ID,
		PrepTime: 30, CookTime: 0, Difficulty: database.DifficultyEasy,
	})
	fx.Recipe(database.CreateRecipeParams{
		Title: "Souffle", Slug: "souffle", AuthorID: cook.ID, CategoryID: &dessert.ID,
		PrepTime: 20, CookTime: 25, Difficulty: database.DifficultyHard,
	})
	fx.Recipe(database.CreateRecipeParams{
		Title: "Minestrone", Slug: "minestrone", AuthorID: cook.ID, CategoryID: &soup.ID,
		PrepTime: 15, CookTime: 40, Difficulty: database.DifficultyEasy,
	})

	res := search(t, db, "category=dessert&difficulty=easy")
	if got := slugs(res.Recipes); len(got) != 1 || got[0] != "tiramisu" {
		t.Errorf("dessert+easy = %v, want [tiramisu]", got)
	}

	res = search(t, db, "category=dessert&difficulty=hard")
	for _, s := range slugs(res.Recipes) {
		if s == "tiramisu" {
			t.Error("difficulty=hard returned tiramisu")
		}
	}

	res = search(t, db, "category=soup")
	if got := slugs(res.Recipes); len(got) != 1 || got[0] != "minestrone" {
		t.Errorf("category=soup = %v, want [minestrone]", got)
	}
	for _, c := range res.Recipes {
		if c.CategorySlug == nil || *c.CategorySlug != "soup" {
			t.Errorf("category filter leaked %q", c.Slug)
		}
	}
}

func TestCatalog_FastestOrdersAdjacentPairs(t *testing.T) {
	db := dbtest.New(t)
	fx := dbtest.NewFixtures(t, db)
	cook := fx.User("cook")

	times := [][2]int32{{10, 30}, {5, 50}, {10, 5}, {5, 0}, {60, 1}, {10, 5}}
	for i, tm := range times {
		fx.Recipe(database.CreateRecipeParams{
			Title: fmt.Sprintf("r%d", i), AuthorID: cook.ID, PrepTime: tm[0], CookTime: tm[1],
		})
	}

	res := search(t, db, "sort=fastest")
	if len(res.Recipes) != len(times) {
		t.Fatalf("got %d recipes, want %d", len(res.Recipes), len(times))
	}
	for i := 1; i < len(res.Recipes); i++ {
		a, b := res.Recipes[i-1], res.Recipes[i]
		if !(a.PrepTime < b.PrepTime || (a.PrepTime == b.PrepTime && a.CookTime <= b.CookTime)) {
			t.Errorf("%s (%d/%d) ordered before %s (%d/%d)",
				a.Slug, a.PrepTime, a.CookTime, b.Slug, b.PrepTime, b.CookTime)
		}
	}
}

func TestCatalog_MinRatingExcludesUnreviewed(t *testing.T) {
	db := dbtest.New(t)
	fx := dbtest.NewFixtures(t, db)
	cook := fx.User("cook")
	critic := fx.User("critic")
	other := fx.User("other")

	fx.Recipe(database.CreateRecipeParams{Title: "plain", AuthorID: cook.ID})
	loved := fx.Recipe(database.CreateRecipeParams{Title: "loved", AuthorID: cook.ID})
	mixed := fx.Recipe(database.CreateRecipeParams{Title: "mixed", AuthorID: cook.ID})
	fx.Review(loved.ID, critic.ID, 5)
	fx.Review(mixed.ID, critic.ID, 4)
	fx.Review(mixed.ID, other.ID, 3)

	res := search(t, db, "min_rating=1")
	got := slugs(res.Recipes)
	if len(got) != 2 {
		t.Fatalf("min_rating=1 = %v, want loved and mixed", got)
	}
	for _, s := range got {
		if s == "plain" {
			t.Error("unreviewed recipe passed min_rating=1")
		}
	}

	// mixed averages 3.5: rounding for display must not decide the filter.
	res = search(t, db, "min_rating=4")
	if got := slugs(res.Recipes); len(got) != 1 || got[0] != "loved" {
		t.Errorf("min_rating=4 = %v, want [loved]", got)
	}

	res = search(t, db, "sort=most_rated")
	if res.Recipes[0].Slug != "mixed" || res.Recipes[0].ReviewCount != 2 || res.Recipes[0].AverageRating != 3.5 {
		t.Errorf("most_rated first = %+v, want mixed with 2 reviews averaging 3.5", res.Recipes[0])
	}
}

func TestCatalog_PageClampsToLast(t *testing.T) {
	db := dbtest.New(t)
	fx := dbtest.NewFixtures(t, db)
	cook := fx.User("cook")

	for i := range 30 {
		fx.Recipe(database.CreateRecipeParams{Title: fmt.Sprintf("recipe-%02d", i), AuthorID: cook.ID})
	}

	res := search(t, db, "page=9999&sort=title")
	if res.Page.Number != 3 || res.Page.TotalPages != 3 {
		t.Fatalf("page = %+v, want 3 of 3", res.Page)
	}
	if len(res.Recipes) != 6 {
		t.Errorf("last page has %d recipes, want 6", len(res.Recipes))
	}
	if res.Recipes[0].Slug != "recipe-24" {
		t.Errorf("last page starts at %q, want recipe-24", res.Recipes[0].Slug)
	}
}

func TestCatalog_TextSearchAndTotalTime(t *testing.T) {
	db := dbtest.New(t)
	fx := dbtest.NewFixtures(t, db)
	cook := fx.User("cook")

	fx.Recipe(database.CreateRecipeParams{Title: "Chili", Slug: "chili", AuthorID: cook.ID, Tags: "spicy,beans", PrepTime: 20, CookTime: 20})
	fx.Recipe(database.CreateRecipeParams{Title: "Salad", Slug: "salad", AuthorID: cook.ID, Description: "100% green", PrepTime: 10, CookTime: 0})

	if got := slugs(search(t, db, "q=SPICY").Recipes); len(got) != 1 || got[0] != "chili" {
		t.Errorf("q=SPICY = %v, want [chili]", got)
	}
	if got := slugs(search(t, db, "q=100%25").Recipes); len(got) != 1 || got[0] != "salad" {
		t.Errorf("q=100%% = %v, want [salad]", got)
	}

	// Both durations must stay under the cap; 20+20 passes 25 on each side.
	got := slugs(search(t, db, "total_time_max=25&sort=title").Recipes)
	if len(got) != 2 {
		t.Errorf("total_time_max=25 = %v, want both recipes", got)
	}
	got = slugs(search(t, db, "total_time_max=20").Recipes)
	if len(got) != 1 || got[0] != "salad" {
		t.Errorf("total_time_max=20 = %v, want [salad]", got)
	}
}

func TestCatalog_DietaryMatchesExactly(t *testing.T) {
	db := dbtest.New(t)
	fx := dbtest.NewFixtures(t, db)
	cook := fx.User("cook")

	fx.Recipe(database.CreateRecipeParams{Title: "Dal", Slug: "dal", AuthorID: cook.ID, DietaryRestriction: database.DietaryVegan})
	fx.Recipe(database.CreateRecipeParams{Title: "Ragu", Slug: "ragu", AuthorID: cook.ID})

	if got := slugs(search(t, db, "dietary=vegan").Recipes); len(got) != 1 || got[0] != "dal" {
		t.Errorf("dietary=vegan = %v, want [dal]", got)
	}
	if got := slugs(search(t, db, "dietary=pescatarian").Recipes); len(got) != 0 {
		t.Errorf("dietary=pescatarian = %v, want none", got)
	}
	if got := slugs(search(t, db, "dietary=none").Recipes); len(got) != 2 {
		t.Errorf("dietary=none = %v, want both recipes", got)
	}
}
