// Package recommend turns one template meal into an ordered list of
// recommendations and promotes meals to detail records.
//
// Everything here is a pure function: same inputs, same output, no I/O.
// Index 0 of every generated list is the template itself ("today's pick");
// the other entries are perturbed clones whose fields depend only on their index.
package recommend

import (
	"fmt"
	"math"
	"strconv"

	"github.com/AdanChavez79/Food-Profiler/internal/apperror"
	"github.com/AdanChavez79/Food-Profiler/internal/model"
)

// Perturbation constants for recommendations at index i >= 1.
//
// Cost, calories and protein start from fixed bases rather than the
// template's own values. A featured meal at $8.50 is followed by
// recommendations priced from $7.50; keep it that way until product says otherwise.
const (
	TimeStepMinutes = 3
	CostBase        = 7.5
	CostStep        = 0.65
	CaloriesBase    = 360
	CaloriesStep    = 25
	ProteinBase     = 24
	ProteinStep     = 2
)

var difficultyCycle = [...]string{
	model.DifficultyEasy,
	model.DifficultyMedium,
	model.DifficultyHard,
}

var (
	evenTags = []string{"protein", "balanced", "weekday"}
	oddTags  = []string{"quick", "flavorful", "meal-prep"}
)

// Generate returns exactly count meals derived from template.
//
// names supplies display names for indexes 1..count-1 (names[i-1]); once it
// runs out, a synthetic "Meal Recommendation N" label is used instead.
// A count below 1 is an InvalidArgument error.
func Generate(count int, template model.Meal, names []string) ([]model.Meal, error) {
	if count < 1 {
		return nil, apperror.InvalidArgument("count",
			fmt.Sprintf("count must be at least 1, got %d", count))
	}

	meals := make([]model.Meal, count)
	meals[0] = template.Clone()
	for i := 1; i < count; i++ {
		meals[i] = derive(i, template, names)
	}
	return meals, nil
}

func derive(i int, template model.Meal, names []string) model.Meal {
	m := template.Clone()
	m.ID = strconv.Itoa(i + 1)
	m.Name = nameAt(i, names)
	m.TotalTime = template.TotalTime + TimeStepMinutes*i
	m.Cost = roundCents(CostBase + CostStep*float64(i))
	m.Calories = CaloriesBase + CaloriesStep*i
	m.Protein = ProteinBase + ProteinStep*i
	m.Difficulty = difficultyCycle[i%len(difficultyCycle)]
	if i%2 == 0 {
		m.Tags = append([]string(nil), evenTags...)
	} else {
		m.Tags = append([]string(nil), oddTags...)
	}
	return m
}

func nameAt(i int, names []string) string {
	if i-1 < len(names) {
		return names[i-1]
	}
	return "Meal Recommendation " + strconv.Itoa(i+1)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
