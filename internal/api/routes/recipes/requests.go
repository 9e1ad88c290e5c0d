package recipes

import (
	"net/http"

	"github.com/matt-dz/recipebox/internal/database"
	"github.com/matt-dz/recipebox/internal/form"
	"github.com/matt-dz/recipebox/internal/recipe"
)

const imageField = "image"

// readRecipeForm parses and validates a submitted recipe with its image.
func readRecipeForm(w http.ResponseWriter, r *http.Request, q database.Querier) (recipe.Form, *form.File, form.Errors, error) {
	if err := form.ParseRequest(w, r); err != nil {
		return recipe.Form{}, nil, nil, err
	}

	f, errs := recipe.ParseRecipeForm(r.PostForm)
	if err := recipe.ValidateCategory(r.Context(), q, f, errs); err != nil {
		return recipe.Form{}, nil, nil, err
	}
	img, err := form.OptionalImage(r, imageField, errs)
	if err != nil {
		return recipe.Form{}, nil, nil, err
	}
	return f, img, errs, nil
}
