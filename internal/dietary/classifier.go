// Package dietary infers diet labels for a recipe from its ingredients and nutrition facts.
package dietary

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pageza/rezeptblog/backend/internal/types"
)

const (
	ketoMaxCarbPercent      = 10
	ketoMinFatPercent       = 60
	highProteinMinPercent   = 30
	highCarbMinPercent      = 60
	lowCarbMaxCarbPercent   = 20
	kcalPerGramProtein      = 4
	kcalPerGramCarbohydrate = 4
	kcalPerGramFat          = 9
)

// MacroRatios is the share of energy from each macronutrient, in percent.
type MacroRatios struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// Classify derives diet labels from keyword presence in the ingredients and the macro ratios
// of the nutrition facts. A missing ingredient class counts as absent, so an empty ingredient
// list is vegan. The result is always marked auto-detected and never manually verified.
func Classify(ingredients []types.Ingredient, nutrition *types.Nutrition) types.DietaryLabels {
	hasMeat := meat.any(ingredients)
	hasFish := fish.any(ingredients)
	hasDairy := dairy.any(ingredients)
	hasEggs := eggs.any(ingredients)
	hasAnimalProducts := animalProducts.any(ingredients)
	hasGrains := grains.any(ingredients)
	hasLegumes := legumes.any(ingredients)
	hasGlutenGrains := glutenGrains.any(ingredients)
	hasHighCarbFoods := highCarbFoods.any(ingredients)
	hasHighProteinFoods := highProteinFoods.any(ingredients)
	hasAddedSugar := addedSugar.any(ingredients)

	macros := Ratios(nutrition)
	vegetarian := !hasMeat && !hasFish

	return types.DietaryLabels{
		Vegan:            !hasAnimalProducts,
		Vegetarian:       vegetarian,
		LactoVegetarian:  vegetarian && !hasEggs && hasDairy,
		OvoVegetarian:    vegetarian && hasEggs && !hasDairy,
		Pescatarian:      !hasMeat && hasFish,
		Keto:             !hasHighCarbFoods && macros.Carbs < ketoMaxCarbPercent && macros.Fat > ketoMinFatPercent,
		Paleo:            !hasGrains && !hasLegumes && !hasDairy && !hasAddedSugar,
		HighProtein:      macros.Protein > highProteinMinPercent || hasHighProteinFoods,
		HighCarb:         macros.Carbs > highCarbMinPercent || hasHighCarbFoods,
		GlutenFree:       !hasGlutenGrains,
		DairyFree:        !hasDairy,
		LowCarb:          macros.Carbs < lowCarbMaxCarbPercent && !hasHighCarbFoods,
		AutoDetected:     true,
		ManuallyVerified: false,
	}
}

// Resolve returns the recipe's curated labels when an editor verified them, and the
// classifier's result otherwise.
func Resolve(r types.Recipe) types.DietaryLabels {
	if r.Dietary != nil && r.Dietary.ManuallyVerified {
		return *r.Dietary
	}
	return Classify(r.Ingredients, r.Nutrition)
}

// Ratios computes the macro energy ratios. Missing or unparsable values count as zero and
// a zero energy total yields all-zero ratios.
func Ratios(n *types.Nutrition) MacroRatios {
	if n == nil {
		return MacroRatios{}
	}
	protein := ParseAmount(types.StringValue(n.Protein)) * kcalPerGramProtein
	carbs := ParseAmount(types.StringValue(n.Carbohydrates)) * kcalPerGramCarbohydrate
	fat := ParseAmount(types.StringValue(n.Fat)) * kcalPerGramFat

	total := protein + carbs + fat
	if total == 0 {
		return MacroRatios{}
	}
	return MacroRatios{
		Protein: protein / total * 100,
		Carbs:   carbs / total * 100,
		Fat:     fat / total * 100,
	}
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount reads the leading number of a nutrition value such as "40 g". Parsing stops
// at the first character that cannot continue the number, so "12,5 g" reads as 12.
// Values without a leading number parse as zero.
func ParseAmount(s string) float64 {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}
