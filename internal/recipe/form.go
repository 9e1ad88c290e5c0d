package recipe

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/matt-dz/recipebox/internal/database"
	"github.com/matt-dz/recipebox/internal/form"
)

const (
	IngredientsPrefix  = "ingredients"
	InstructionsPrefix = "instructions"
	// ExtraRows is the number of blank rows offered for each collection.
	ExtraRows = 5
	// maxRows bounds the TOTAL_FORMS a client may claim.
	maxRows = 1000
)

// Form is a submitted recipe with its ingredient and instruction rows.
type Form struct {
	Title              string                      `json:"title" form:"title" validate:"required,max=200"`
	Description        string                      `json:"description" form:"description" validate:"required"`
	CategoryID         *int64                      `json:"category_id" form:"category" validate:"required"`
	PrepTime           int                         `json:"prep_time" form:"prep_time" validate:"gte=0"`
	CookTime           int                         `json:"cook_time" form:"cook_time" validate:"gte=0"`
	Servings           int                         `json:"servings" form:"servings" validate:"gte=1"`
	Difficulty         database.Difficulty         `json:"difficulty" form:"difficulty" validate:"required,oneof=easy medium hard"`
	DietaryRestriction database.DietaryRestriction `json:"dietary_restriction" form:"dietary_restriction" validate:"required,oneof=vegan vegetarian gluten-free dairy-free keto paleo none"`
	Tags               string                      `json:"tags" form:"tags" validate:"max=200"`

	Ingredients  []IngredientForm  `json:"ingredients" form:"-" validate:"-"`
	Instructions []InstructionForm `json:"instructions" form:"-" validate:"-"`
}

type IngredientForm struct {
	Name     string `json:"name" form:"name" validate:"required,max=100"`
	Quantity string `json:"quantity" form:"quantity" validate:"required,max=50"`
	Order    int    `json:"order" form:"order" validate:"gte=0"`
	Delete   bool   `json:"delete,omitempty" form:"-" validate:"-"`
}

func (i IngredientForm) blank() bool {
	return i.Name == "" && i.Quantity == "" && i.Order == 0
}

type InstructionForm struct {
	StepNumber  int    `json:"step_number" form:"step_number" validate:"gte=1"`
	Description string `json:"description" form:"description" validate:"required"`
	Delete      bool   `json:"delete,omitempty" form:"-" validate:"-"`
}

func (i InstructionForm) blank() bool {
	return i.StepNumber == 0 && i.Description == ""
}

// KeptIngredients returns the rows to store, skipping blank rows and rows
// marked for deletion.
func (f Form) KeptIngredients() []IngredientForm {
	var kept []IngredientForm
	for _, i := range f.Ingredients {
		if !i.Delete && !i.blank() {
			kept = append(kept, i)
		}
	}
	return kept
}

// KeptInstructions is KeptIngredients for instructions.
func (f Form) KeptInstructions() []InstructionForm {
	var kept []InstructionForm
	for _, i := range f.Instructions {
		if !i.Delete && !i.blank() {
			kept = append(kept, i)
		}
	}
	return kept
}

// NewForm returns the form shown for a new recipe.
func NewForm() Form {
	return Form{
		Servings:           4,
		Difficulty:         database.DifficultyEasy,
		DietaryRestriction: database.DietaryNone,
	}.WithExtraRows()
}

// FormFromRecipe fills the form with a stored recipe for editing.
func FormFromRecipe(r database.Recipe, ingredients []database.Ingredient, instructions []database.Instruction) Form {
	f := Form{
		Title:              r.Title,
		Description:        r.Description,
		CategoryID:         r.CategoryID,
		PrepTime:           int(r.PrepTime),
		CookTime:           int(r.CookTime),
		Servings:           int(r.Servings),
		Difficulty:         r.Difficulty,
		DietaryRestriction: r.DietaryRestriction,
		Tags:               r.Tags,
	}
	for _, i := range ingredients {
		f.Ingredients = append(f.Ingredients, IngredientForm{Name: i.Name, Quantity: i.Quantity, Order: int(i.Order)})
	}
	for _, i := range instructions {
		f.Instructions = append(f.Instructions, InstructionForm{StepNumber: int(i.StepNumber), Description: i.Description})
	}
	return f.WithExtraRows()
}

// WithExtraRows appends ExtraRows blank rows to both collections.
func (f Form) WithExtraRows() Form {
	f.Ingredients = append(f.Ingredients, make([]IngredientForm, ExtraRows)...)
	f.Instructions = append(f.Instructions, make([]InstructionForm, ExtraRows)...)
	return f
}

// ParseRecipeForm reads a submitted recipe. Every submitted row is kept at
// its index so the form can be shown again, but rows left blank or marked
// DELETE are not validated. The returned errors are keyed by form field
// name, with row fields named "<prefix>-<index>-<field>".
func ParseRecipeForm(v url.Values) (Form, form.Errors) {
	errs := form.Errors{}
	f := Form{
		Title:              strings.TrimSpace(v.Get("title")),
		Description:        strings.TrimSpace(v.Get("description")),
		Difficulty:         database.Difficulty(strings.TrimSpace(v.Get("difficulty"))),
		DietaryRestriction: database.DietaryRestriction(strings.TrimSpace(v.Get("dietary_restriction"))),
		Tags:               strings.TrimSpace(v.Get("tags")),
	}
	if f.DietaryRestriction == "" {
		f.DietaryRestriction = database.DietaryNone
	}

	if raw := strings.TrimSpace(v.Get("category")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errs.Add("category", "Select a valid choice.")
		} else {
			f.CategoryID = &id
		}
	}
	f.PrepTime = requiredInt(v, "prep_time", errs)
	f.CookTime = requiredInt(v, "cook_time", errs)
	f.Servings = requiredInt(v, "servings", errs)

	for field, msg := range form.Validate(f) {
		errs.Add(field, msg)
	}

	for i := range rowCount(v, IngredientsPrefix) {
		prefix := fmt.Sprintf("%s-%d-", IngredientsPrefix, i)
		rowErrs := form.Errors{}
		row := IngredientForm{
			Name:     strings.TrimSpace(v.Get(prefix + "name")),
			Quantity: strings.TrimSpace(v.Get(prefix + "quantity")),
			Order:    optionalInt(v, prefix+"order", "order", rowErrs),
			Delete:   deleted(v, prefix),
		}
		f.Ingredients = append(f.Ingredients, row)
		if row.Delete || (row.blank() && !rowErrs.Any()) {
			continue
		}
		rowErrs.Merge("", form.Validate(row))
		errs.Merge(prefix, rowErrs)
	}

	for i := range rowCount(v, InstructionsPrefix) {
		prefix := fmt.Sprintf("%s-%d-", InstructionsPrefix, i)
		rowErrs := form.Errors{}
		row := InstructionForm{
			StepNumber:  optionalInt(v, prefix+"step_number", "step_number", rowErrs),
			Description: strings.TrimSpace(v.Get(prefix + "description")),
			Delete:      deleted(v, prefix),
		}
		f.Instructions = append(f.Instructions, row)
		if row.Delete || (row.blank() && !rowErrs.Any()) {
			continue
		}
		rowErrs.Merge("", form.Validate(row))
		errs.Merge(prefix, rowErrs)
	}

	return f, errs
}

// ValidateCategory adds an error when the chosen category does not exist.
func ValidateCategory(ctx context.Context, q database.Querier, f Form, errs form.Errors) error {
	if f.CategoryID == nil {
		return nil
	}
	_, err := q.GetCategory(ctx, *f.CategoryID)
	if database.IsNotFound(err) {
		errs.Add("category", "Select a valid choice.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("getting category: %w", err)
	}
	return nil
}

func rowCount(v url.Values, prefix string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v.Get(prefix + "-TOTAL_FORMS")))
	if err != nil || n < 0 {
		return 0
	}
	return min(n, maxRows)
}

func deleted(v url.Values, prefix string) bool {
	switch strings.ToLower(strings.TrimSpace(v.Get(prefix + "DELETE"))) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

func requiredInt(v url.Values, field string, errs form.Errors) int {
	raw := strings.TrimSpace(v.Get(field))
	if raw == "" {
		errs.Add(field, "This field is required.")
		return 0
	}
	return parseInt32(raw, field, errs)
}

func optionalInt(v url.Values, key, field string, errs form.Errors) int {
	raw := strings.TrimSpace(v.Get(key))
	if raw == "" {
		return 0
	}
	return parseInt32(raw, field, errs)
}

// parseInt32 bounds form numbers to the int32 columns they are stored in.
func parseInt32(raw, field string, errs form.Errors) int {
	n, err := strconv.ParseInt(raw, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		errs.Add(field, fmt.Sprintf("Ensure this value is between %d and %d.", math.MinInt32, math.MaxInt32))
		return 0
	}
	if err != nil {
		errs.Add(field, "Enter a whole number.")
		return 0
	}
	return int(n)
}
