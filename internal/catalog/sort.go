package catalog

import (
	"strings"

	"github.com/matt-dz/recipebox/internal/database"
)

type Sort string

const (
	SortNewest     Sort = "newest"
	SortFastest    Sort = "fastest"
	SortTitle      Sort = "title"
	SortMostViewed Sort = "most_viewed"
	SortMostRated  Sort = "most_rated"

	// sortTopRated ranks by average rating and is only used by the dashboard.
	sortTopRated Sort = "top_rated"
)

// Sorts lists the sort keys offered by the catalog in display order.
func Sorts() []Sort {
	return []Sort{SortNewest, SortFastest, SortTitle, SortMostViewed, SortMostRated}
}

// ParseSort maps a sort parameter onto a key, falling back to SortNewest.
func ParseSort(raw string) Sort {
	s := Sort(strings.TrimSpace(raw))
	for _, known := range Sorts() {
		if s == known {
			return s
		}
	}
	return SortNewest
}

// orderBy returns the ORDER BY list. Every ordering ends on the recipe id
// so equal keys keep a stable order across pages.
func (s Sort) orderBy() string {
	switch s {
	case SortFastest:
		return "r.prep_time ASC, r.cook_time ASC, r.id ASC"
	case SortTitle:
		return "r.title ASC, r.id ASC"
	case SortMostViewed:
		return "r.view_count DESC, r.id ASC"
	case SortMostRated:
		return database.ReviewCountExpr + " DESC, r.id ASC"
	case sortTopRated:
		return database.AverageRatingExpr + " DESC NULLS LAST, " + database.ReviewCountExpr + " DESC, r.id ASC"
	default:
		return "r.created_at DESC, r.id DESC"
	}
}
