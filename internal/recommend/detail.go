package recommend

import "github.com/AdanChavez79/Food-Profiler/internal/model"

// Detail view constants. Every detail record gets the same servings, macros
// and placeholder ingredients/steps regardless of which meal it was built from.
const (
	PrepTimeMinutes     = 10
	MinCookTimeMinutes  = 10
	DefaultServings     = 2
	PlaceholderCarbs    = 28
	PlaceholderFatGrams = 18
)

var placeholderIngredients = []string{
	"2 chicken breasts",
	"1 cup broccoli florets",
	"1 bell pepper, sliced",
	"1 cup cherry tomatoes",
	"2 tbsp olive oil",
	"1 tsp garlic powder",
	"Salt and pepper to taste",
	"1 tsp Italian seasoning",
}

var placeholderSteps = []string{
	"Preheat oven to 400°F (200°C)",
	"Season chicken breasts with salt, pepper, and garlic powder",
	"Arrange chicken and vegetables on a baking sheet",
	"Drizzle with olive oil and sprinkle Italian seasoning",
	"Bake for 25 minutes until chicken is cooked through",
	"Let rest for 5 minutes before serving",
}

// ToDetail promotes meal to a detail record.
// CookTime is TotalTime minus prep, floored at MinCookTimeMinutes.
func ToDetail(meal model.Meal) model.DetailMeal {
	return model.DetailMeal{
		Meal:        meal.Clone(),
		PrepTime:    PrepTimeMinutes,
		CookTime:    max(meal.TotalTime-PrepTimeMinutes, MinCookTimeMinutes),
		Servings:    DefaultServings,
		Carbs:       PlaceholderCarbs,
		Fat:         PlaceholderFatGrams,
		Ingredients: append([]string(nil), placeholderIngredients...),
		Steps:       append([]string(nil), placeholderSteps...),
	}
}
