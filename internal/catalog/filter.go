// Package catalog composes, ranks and pages recipe listings.
package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/matt-dz/recipebox/internal/database"
)

// Filter holds the optional catalog criteria. Zero values apply no filter.
type Filter struct {
	Query       string                      `json:"q"`
	Category    string                      `json:"category"`
	Difficulty  database.Difficulty         `json:"difficulty"`
	Dietary     database.DietaryRestriction `json:"dietary"`
	PrepTimeMax *int                        `json:"prep_time_max"`
	// TotalTimeMax caps prep_time and cook_time independently: a recipe
	// matches when both are strictly below it. It is not a cap on their sum.
	TotalTimeMax *int `json:"total_time_max"`
	// MinRating keeps recipes whose unrounded average rating is at least
	// this value. Recipes without reviews never match.
	MinRating *int `json:"min_rating"`
}

// ParseFilter reads the catalog query parameters. Unknown difficulties,
// dietary "none" and malformed numbers are dropped rather than rejected.
// Any other dietary value is matched exactly, so an unknown one finds
// nothing.
func ParseFilter(v url.Values) Filter {
	f := Filter{
		Query:    strings.TrimSpace(v.Get("q")),
		Category: strings.TrimSpace(v.Get("category")),
	}

	if d := database.Difficulty(strings.TrimSpace(v.Get("difficulty"))); d.Valid() {
		f.Difficulty = d
	}

	// "none" is the "any diet" option of the filter form, so it never
	// selects recipes stored with the literal value.
	if d := database.DietaryRestriction(strings.TrimSpace(v.Get("dietary"))); d != "" && d != database.DietaryNone {
		f.Dietary = d
	}

	f.PrepTimeMax = parseInt(v.Get("prep_time_max"))
	f.TotalTimeMax = parseInt(v.Get("total_time_max"))
	f.MinRating = parseInt(v.Get("min_rating"))
	return f
}

func parseInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// Values renders the filter back into query parameters, used to build
// pagination links that keep the current selection.
func (f Filter) Values() url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	set("q", f.Query)
	set("category", f.Category)
	set("difficulty", string(f.Difficulty))
	set("dietary", string(f.Dietary))
	for key, n := range map[string]*int{
		"prep_time_max":  f.PrepTimeMax,
		"total_time_max": f.TotalTimeMax,
		"min_rating":     f.MinRating,
	} {
		if n != nil {
			v.Set(key, strconv.Itoa(*n))
		}
	}
	return v
}
