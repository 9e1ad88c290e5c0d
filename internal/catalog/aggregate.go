package catalog

import (
	"math"

	"github.com/matt-dz/recipebox/internal/database"
)

// AverageRating returns the mean of ratings rounded to one decimal place,
// or zero when there are none.
func AverageRating(ratings []int32) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum int64
	for _, r := range ratings {
		sum += int64(r)
	}
	mean := float64(sum) / float64(len(ratings))
	return math.Round(mean*10) / 10
}

// RatingSummary is the rating aggregate shown next to a recipe.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

func Summarize(reviews []database.ReviewWithAuthor) RatingSummary {
	ratings := make([]int32, len(reviews))
	for i, r := range reviews {
		ratings[i] = r.Rating
	}
	return RatingSummary{
		Average: AverageRating(ratings),
		Count:   len(reviews),
	}
}
