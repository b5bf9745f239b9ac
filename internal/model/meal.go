// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — plain values with JSON tags,
// no behaviour beyond small helpers.
package model

// Difficulty levels a meal can carry. Recommendations cycle through them in
// this order.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Meal is a single meal card: the template meal from the catalog, or one of
// the recommendations derived from it.
//
// The `json:"..."` tags use camelCase because the mobile client reads these
// keys directly (totalTime, not total_time).
type Meal struct {
	ID         string   `json:"id"         yaml:"id"`
	Name       string   `json:"name"       yaml:"name"`
	Image      string   `json:"image"      yaml:"image"` // opaque URI, never validated
	Cost       float64  `json:"cost"       yaml:"cost"`  // dollars, 2 decimal places
	Difficulty string   `json:"difficulty" yaml:"difficulty"`
	TotalTime  int      `json:"totalTime"  yaml:"totalTime"` // minutes
	Calories   int      `json:"calories"   yaml:"calories"`
	Protein    int      `json:"protein"    yaml:"protein"` // grams
	Tags       []string `json:"tags"       yaml:"tags"`
}

// Clone returns a copy of m that shares no slices with it.
func (m Meal) Clone() Meal {
	c := m
	if m.Tags != nil {
		c.Tags = append([]string(nil), m.Tags...)
	}
	return c
}

// DetailMeal is a Meal promoted to the detail view.
//
// Ingredients and Steps are shared placeholder content: every meal shows the
// same lists. The client treats them as illustrative.
type DetailMeal struct {
	Meal
	PrepTime    int      `json:"prepTime"` // minutes
	CookTime    int      `json:"cookTime"` // minutes
	Servings    int      `json:"servings"`
	Carbs       int      `json:"carbs"` // grams
	Fat         int      `json:"fat"`   // grams
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}
