package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/matt-dz/recipebox/internal/database"
)

// Query is a catalog listing: the public filter and sort plus criteria the
// application sets itself (author pages, dashboard sections, favorites).
// Nil slices apply no constraint; empty non-nil slices match nothing.
type Query struct {
	Filter Filter
	Sort   Sort

	AuthorIDs    []int64
	CategoryIDs  []int64
	ExcludeIDs   []int64
	CreatedSince time.Time
	// Reviewed keeps only recipes with at least one review.
	Reviewed bool
	// FavoritedBy keeps the recipes favorited by this user when non-zero.
	FavoritedBy int64
}

// Statement is a SQL string with its positional arguments.
type Statement struct {
	SQL  string
	Args []any
}

type builder struct {
	where  []string
	having []string
	args   []any
}

// arg records v and returns its placeholder.
func (b *builder) arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere in a value.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func (q Query) conditions() *builder {
	b := &builder{}
	f := q.Filter

	if f.Query != "" {
		p := b.arg(containsPattern(f.Query))
		b.where = append(b.where, "(r.title ILIKE "+p+" OR r.description ILIKE "+p+" OR r.tags ILIKE "+p+")")
	}
	if f.Category != "" {
		b.where = append(b.where, "c.slug = "+b.arg(f.Category))
	}
	if f.Difficulty != "" {
		b.where = append(b.where, "r.difficulty = "+b.arg(string(f.Difficulty)))
	}
	if f.Dietary != "" {
		b.where = append(b.where, "r.dietary_restriction = "+b.arg(string(f.Dietary)))
	}
	if f.PrepTimeMax != nil {
		b.where = append(b.where, "r.prep_time <= "+b.arg(int64(*f.PrepTimeMax)))
	}
	if f.TotalTimeMax != nil {
		p := b.arg(int64(*f.TotalTimeMax))
		b.where = append(b.where, "r.prep_time < "+p+" AND r.cook_time < "+p)
	}
	if f.MinRating != nil {
		// AVG over no rows is NULL, so unreviewed recipes fail the comparison.
		b.having = append(b.having, database.AverageRatingExpr+" >= "+b.arg(int64(*f.MinRating)))
	}

	if q.AuthorIDs != nil {
		b.where = append(b.where, "r.author_id = ANY("+b.arg(q.AuthorIDs)+")")
	}
	if q.CategoryIDs != nil {
		b.where = append(b.where, "r.category_id = ANY("+b.arg(q.CategoryIDs)+")")
	}
	if len(q.ExcludeIDs) > 0 {
		b.where = append(b.where, "r.id <> ALL("+b.arg(q.ExcludeIDs)+")")
	}
	if !q.CreatedSince.IsZero() {
		b.where = append(b.where, "r.created_at >= "+b.arg(q.CreatedSince))
	}
	if q.FavoritedBy != 0 {
		b.where = append(b.where,
			"EXISTS (SELECT 1 FROM favorites f WHERE f.recipe_id = r.id AND f.user_id = "+b.arg(q.FavoritedBy)+")")
	}
	if q.Reviewed {
		b.having = append(b.having, database.ReviewCountExpr+" > 0")
	}
	return b
}

func (b *builder) filtered(sb *strings.Builder) {
	sb.WriteString("\nFROM ")
	sb.WriteString(database.RecipeCardFrom)
	if len(b.where) > 0 {
		sb.WriteString("\nWHERE ")
		sb.WriteString(strings.Join(b.where, " AND "))
	}
	sb.WriteString("\nGROUP BY ")
	sb.WriteString(database.RecipeCardGroupBy)
	if len(b.having) > 0 {
		sb.WriteString("\nHAVING ")
		sb.WriteString(strings.Join(b.having, " AND "))
	}
}

// Build returns the statement selecting one ordered page of recipe cards.
// A limit of zero or less selects every matching recipe.
func (q Query) Build(limit, offset int) Statement {
	b := q.conditions()

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(database.RecipeCardColumns)
	b.filtered(&sb)
	sb.WriteString("\nORDER BY ")
	sb.WriteString(q.Sort.orderBy())
	if limit > 0 {
		sb.WriteString("\nLIMIT ")
		sb.WriteString(b.arg(int64(limit)))
	}
	if offset > 0 {
		sb.WriteString(" OFFSET ")
		sb.WriteString(b.arg(int64(offset)))
	}

	return Statement{SQL: sb.String(), Args: b.args}
}

// BuildCount returns the statement counting every recipe Build would match.
func (q Query) BuildCount() Statement {
	b := q.conditions()

	var sb strings.Builder
	sb.WriteString("SELECT count(*) FROM (\nSELECT r.id")
	b.filtered(&sb)
	sb.WriteString("\n) AS matched")

	return Statement{SQL: sb.String(), Args: b.args}
}
