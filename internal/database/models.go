package database

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the difficulties in display order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type DietaryRestriction string

const (
	DietaryVegan      DietaryRestriction = "vegan"
	DietaryVegetarian DietaryRestriction = "vegetarian"
	DietaryGlutenFree DietaryRestriction = "gluten-free"
	DietaryDairyFree  DietaryRestriction = "dairy-free"
	DietaryKeto       DietaryRestriction = "keto"
	DietaryPaleo      DietaryRestriction = "paleo"
	DietaryNone       DietaryRestriction = "none"
)

// DietaryRestrictions lists the dietary restrictions in display order.
func DietaryRestrictions() []DietaryRestriction {
	return []DietaryRestriction{
		DietaryVegan, DietaryVegetarian, DietaryGlutenFree,
		DietaryDairyFree, DietaryKeto, DietaryPaleo, DietaryNone,
	}
}

func (d DietaryRestriction) Valid() bool {
	for _, v := range DietaryRestrictions() {
		if d == v {
			return true
		}
	}
	return false
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Profile struct {
	UserID    int64     `json:"user_id"`
	Bio       string    `json:"bio"`
	Avatar    *string   `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CategoryCount struct {
	Category
	RecipeCount int64 `json:"recipe_count"`
}

type Recipe struct {
	ID                 int64              `json:"id"`
	Title              string             `json:"title"`
	Slug               string             `json:"slug"`
	AuthorID           int64              `json:"author_id"`
	Description        string             `json:"description"`
	CategoryID         *int64             `json:"category_id"`
	PrepTime           int32              `json:"prep_time"`
	CookTime           int32              `json:"cook_time"`
	Servings           int32              `json:"servings"`
	Difficulty         Difficulty         `json:"difficulty"`
	DietaryRestriction DietaryRestriction `json:"dietary_restriction"`
	Image              *string            `json:"image"`
	Tags               string             `json:"tags"`
	ViewCount          int32              `json:"view_count"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type Ingredient struct {
	ID       int64  `json:"id"`
	RecipeID int64  `json:"recipe_id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Order    int32  `json:"order"`
}

type Instruction struct {
	ID          int64  `json:"id"`
	RecipeID    int64  `json:"recipe_id"`
	StepNumber  int32  `json:"step_number"`
	Description string `json:"description"`
}

type Review struct {
	ID        int64     `json:"id"`
	RecipeID  int64     `json:"recipe_id"`
	UserID    int64     `json:"user_id"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewWithAuthor struct {
	Review
	Username string `json:"username"`
}

// RecipeCard is a recipe joined with its author, category and review
// aggregates. Rows are produced by statements selecting RecipeCardColumns.
type RecipeCard struct {
	ID                 int64              `json:"id"`
	Title              string             `json:"title"`
	Slug               string             `json:"slug"`
	Description        string             `json:"description"`
	AuthorID           int64              `json:"author_id"`
	AuthorUsername     string             `json:"author_username"`
	CategoryID         *int64             `json:"category_id"`
	CategoryName       *string            `json:"category_name"`
	CategorySlug       *string            `json:"category_slug"`
	PrepTime           int32              `json:"prep_time"`
	CookTime           int32              `json:"cook_time"`
	Servings           int32              `json:"servings"`
	Difficulty         Difficulty         `json:"difficulty"`
	DietaryRestriction DietaryRestriction `json:"dietary_restriction"`
	Image              *string            `json:"image"`
	Tags               string             `json:"tags"`
	ViewCount          int32              `json:"view_count"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	AverageRating      float64            `json:"average_rating"`
	ReviewCount        int64              `json:"review_count"`
}

func (c RecipeCard) TotalTime() int32 {
	return c.PrepTime + c.CookTime
}
