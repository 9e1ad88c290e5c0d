package catalog

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/matt-dz/recipebox/internal/database"
)

func TestBuild_NoCriteria(t *testing.T) {
	stmt := Query{}.Build(0, 0)

	if strings.Contains(stmt.SQL, "WHERE") || strings.Contains(stmt.SQL, "HAVING") {
		t.Errorf("unfiltered query has conditions:\n%s", stmt.SQL)
	}
	if strings.Contains(stmt.SQL, "LIMIT") {
		t.Errorf("zero limit produced LIMIT:\n%s", stmt.SQL)
	}
	if !strings.HasSuffix(stmt.SQL, "ORDER BY r.created_at DESC, r.id DESC") {
		t.Errorf("default ordering missing:\n%s", stmt.SQL)
	}
	if len(stmt.Args) != 0 {
		t.Errorf("args = %v, want none", stmt.Args)
	}
}

func TestBuild_Filters(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		contains []string
		args     []any
	}{
		{
			name:     "text search spans title description and tags",
			filter:   Filter{Query: "choc"},
			contains: []string{"(r.title ILIKE $1 OR r.description ILIKE $1 OR r.tags ILIKE $1)"},
			args:     []any{"%choc%"},
		},
		{
			name:     "like wildcards are escaped",
			filter:   Filter{Query: `50%_off\`},
			contains: []string{"r.title ILIKE $1"},
			args:     []any{`%50\%\_off\\%`},
		},
		{
			name:     "category by slug",
			filter:   Filter{Category: "dessert"},
			contains: []string{"c.slug = $1"},
			args:     []any{"dessert"},
		},
		{
			name:     "difficulty and dietary",
			filter:   Filter{Difficulty: database.DifficultyEasy, Dietary: database.DietaryVegan},
			contains: []string{"r.difficulty = $1", "r.dietary_restriction = $2"},
			args:     []any{"easy", "vegan"},
		},
		{
			name:     "prep time is inclusive",
			filter:   Filter{PrepTimeMax: intPtr(15)},
			contains: []string{"r.prep_time <= $1"},
			args:     []any{int64(15)},
		},
		{
			name:     "total time caps both durations",
			filter:   Filter{TotalTimeMax: intPtr(30)},
			contains: []string{"r.prep_time < $1 AND r.cook_time < $1"},
			args:     []any{int64(30)},
		},
		{
			name:     "min rating filters aggregate",
			filter:   Filter{MinRating: intPtr(4)},
			contains: []string{"HAVING AVG(rv.rating) >= $1"},
			args:     []any{int64(4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := Query{Filter: tt.filter}.Build(0, 0)
			for _, want := range tt.contains {
				if !strings.Contains(stmt.SQL, want) {
					t.Errorf("SQL missing %q:\n%s", want, stmt.SQL)
				}
			}
			if !reflect.DeepEqual(stmt.Args, tt.args) {
				t.Errorf("args = %#v, want %#v", stmt.Args, tt.args)
			}
		})
	}
}

func TestBuild_ConditionsAreConjunctive(t *testing.T) {
	stmt := Query{Filter: Filter{
		Category:   "dessert",
		Difficulty: database.DifficultyEasy,
	}}.Build(0, 0)

	if !strings.Contains(stmt.SQL, "WHERE c.slug = $1 AND r.difficulty = $2") {
		t.Errorf("filters not joined with AND:\n%s", stmt.SQL)
	}
}

func TestBuild_PlaceholdersFollowArgs(t *testing.T) {
	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	q := Query{
		Filter:       Filter{Query: "soup", MinRating: intPtr(3)},
		Sort:         SortMostRated,
		AuthorIDs:    []int64{1, 2},
		CategoryIDs:  []int64{5},
		ExcludeIDs:   []int64{9},
		CreatedSince: since,
		Reviewed:     true,
		FavoritedBy:  7,
	}
	stmt := q.Build(12, 24)

	wantArgs := []any{"%soup%", int64(3), []int64{1, 2}, []int64{5}, []int64{9}, since, int64(7), int64(12), int64(24)}
	if !reflect.DeepEqual(stmt.Args, wantArgs) {
		t.Fatalf("args = %#v, want %#v", stmt.Args, wantArgs)
	}

	for _, want := range []string{
		"r.author_id = ANY($3)",
		"r.category_id = ANY($4)",
		"r.id <> ALL($5)",
		"r.created_at >= $6",
		"f.user_id = $7",
		"HAVING AVG(rv.rating) >= $2 AND COUNT(rv.id) > 0",
		"ORDER BY COUNT(rv.id) DESC, r.id ASC",
		"LIMIT $8 OFFSET $9",
	} {
		if !strings.Contains(stmt.SQL, want) {
			t.Errorf("SQL missing %q:\n%s", want, stmt.SQL)
		}
	}
}

func TestBuild_EmptyIDListsStillConstrain(t *testing.T) {
	stmt := Query{AuthorIDs: []int64{}}.Build(0, 0)
	if !strings.Contains(stmt.SQL, "r.author_id = ANY($1)") {
		t.Errorf("empty author list dropped:\n%s", stmt.SQL)
	}

	stmt = Query{ExcludeIDs: []int64{}}.Build(0, 0)
	if strings.Contains(stmt.SQL, "ALL(") {
		t.Errorf("empty exclusion list produced a condition:\n%s", stmt.SQL)
	}
}

func TestBuildCount_SharesConditions(t *testing.T) {
	q := Query{Filter: Filter{Category: "dessert", MinRating: intPtr(1)}}
	count := q.BuildCount()
	page := q.Build(12, 0)

	if !strings.HasPrefix(count.SQL, "SELECT count(*) FROM (") {
		t.Errorf("count statement = %s", count.SQL)
	}
	if strings.Contains(count.SQL, "ORDER BY") || strings.Contains(count.SQL, "LIMIT") {
		t.Errorf("count statement orders or limits:\n%s", count.SQL)
	}
	if !reflect.DeepEqual(count.Args, page.Args[:len(count.Args)]) {
		t.Errorf("count args %v differ from page args %v", count.Args, page.Args)
	}
	if !strings.Contains(count.SQL, "HAVING AVG(rv.rating) >= $2") {
		t.Errorf("count statement lost HAVING:\n%s", count.SQL)
	}
}
